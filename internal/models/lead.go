package models

// LeadStatus tracks follow-up on a franchise inquiry.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusArchived  LeadStatus = "archived"
)

// Valid reports whether the status is one of the known values.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusArchived:
		return true
	}
	return false
}

// Lead is a franchise-inquiry submission from an anonymous visitor.
// IDs are assigned server-side and are monotonic by creation time.
type Lead struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	City      string     `json:"city"`
	Message   string     `json:"message"`
	Timestamp int64      `json:"timestamp"`
	Status    LeadStatus `json:"status"`
}

// MenuItem is one product of the drink catalogue.
type MenuItem struct {
	ID          int           `json:"id"`
	Name        LocalizedText `json:"name"`
	Tag         LocalizedText `json:"tag"`
	Desc        LocalizedText `json:"desc"`
	Price       string        `json:"price"`
	Eng         string        `json:"eng"`
	Image       string        `json:"image"`
	Ingredients string        `json:"ingredients"`
}

// DataSource names the tier that supplied the active content snapshot.
type DataSource string

const (
	SourceCloud   DataSource = "cloud"
	SourceLocal   DataSource = "local"
	SourceDefault DataSource = "default"
)

// CloudConfig is the runtime-editable remote store configuration, persisted
// in the local cache so it survives restarts.
type CloudConfig struct {
	Enabled    bool     `json:"enabled"`
	DocumentID string   `json:"documentId"`
	APIKey     string   `json:"apiKey"`
	ShardIDs   []string `json:"shardIds,omitempty"`
}
