package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMongoDocShaping(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(mongoDoc[string]{ID: "order-1", State: "unlocked", UpdatedAt: at})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "order-1", doc["_id"])
	assert.Equal(t, "unlocked", doc["state"])
	assert.Contains(t, doc, "updated_at")
}

func TestMongoStoreCollectionShaping(t *testing.T) {
	t.Parallel()

	t.Run("default collection name", func(t *testing.T) {
		t.Parallel()
		cfg := mongoConfig{collection: defaultCollection}
		assert.Equal(t, "fsm_snapshots", cfg.collection)
	})

	t.Run("custom collection name", func(t *testing.T) {
		t.Parallel()
		cfg := mongoConfig{collection: defaultCollection}
		WithCollection("machine_states")(&cfg)
		assert.Equal(t, "machine_states", cfg.collection)
	})
}
