package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type NewCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description *string `json:"description"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryLookup is the ephemeral name→id mapping used to resolve a product's
// category from a human-readable selection. It is rebuilt on every directory
// read and carries the directory version it was built from; any category
// creation bumps the version and makes older lookups stale. Never persisted.
type CategoryLookup struct {
	Version  uint64          `json:"version"`
	IDByName map[string]uint `json:"ids_by_name"`
	// Names preserves server return order (first occurrence) for select widgets.
	Names []string `json:"names"`
}

// Resolve maps a category name to its id.
func (l CategoryLookup) Resolve(name string) (uint, bool) {
	id, ok := l.IDByName[name]
	return id, ok
}
