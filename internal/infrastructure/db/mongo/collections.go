package mongo

import "fmt"

// Collection names are declared here rather than inferred from entity names,
// and validated once at startup.
const (
	collectionUsers      = "users"
	collectionSessions   = "sessions"
	collectionUploadLogs = "upload_logs"
	collectionAccounts   = "social_accounts"
	collectionProducts   = "products"
	collectionOrders     = "orders"
	collectionAIJobs     = "ai_jobs"
)

// collections maps each persisted entity to its storage collection.
var collections = map[string]string{
	"user":           collectionUsers,
	"session":        collectionSessions,
	"upload_log":     collectionUploadLogs,
	"social_account": collectionAccounts,
	"product":        collectionProducts,
	"order":          collectionOrders,
	"ai_job":         collectionAIJobs,
}

// ValidateCollections checks the entity→collection mapping for empty or
// duplicated names. Called from main before any repository is built.
func ValidateCollections() error {
	seen := make(map[string]string, len(collections))
	for entity, coll := range collections {
		if coll == "" {
			return fmt.Errorf("mongo: entity %q has no collection", entity)
		}
		if other, dup := seen[coll]; dup {
			return fmt.Errorf("mongo: entities %q and %q share collection %q", entity, other, coll)
		}
		seen[coll] = entity
	}
	return nil
}

// CollectionNames returns the declared collection names, for diagnostics.
func CollectionNames() []string {
	names := make([]string, 0, len(collections))
	for _, coll := range collections {
		names = append(names, coll)
	}
	return names
}
