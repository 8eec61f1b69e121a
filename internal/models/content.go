package models

import "encoding/json"

// SiteContent is the aggregate editable state of the whole site: named page
// sections plus three flat top-level collections (menu, leads, library).
// It is the single shared mutable resource of the service; every mutation
// clones it, edits the clone and swaps the pointer.
type SiteContent struct {
	Hero        HeroSection       `json:"hero"`
	Model       ModelSection      `json:"model"`
	Process     ProcessSection    `json:"process"`
	Showcase    ShowcaseSection   `json:"showcase"`
	Comparison  ComparisonSection `json:"comparison"`
	Financials  FinancialsSection `json:"financials"`
	MenuSection MenuHeaderSection `json:"menuSection"`
	FAQ         FAQSection        `json:"faq"`
	Partner     PartnerSection    `json:"partner"`
	Footer      FooterSection     `json:"footer"`

	Menu    []MenuItem `json:"menu"`
	Leads   []Lead     `json:"leads"`
	Library []string   `json:"library"`

	// Extra carries unknown top-level fields of a persisted document so a
	// load/save round trip never drops data written by another version of
	// the system.
	Extra map[string]json.RawMessage `json:"-"`
}

// HeroSection is the landing banner.
type HeroSection struct {
	Visible         bool          `json:"isVisible"`
	Title           LocalizedText `json:"title"`
	Tagline         LocalizedText `json:"tagline"`
	Subtitle        LocalizedText `json:"subtitle"`
	CTALabel        LocalizedText `json:"ctaLabel"`
	BackgroundImage string        `json:"backgroundImage"`
}

// ModelSection describes the franchise pricing model.
type ModelSection struct {
	Visible     bool          `json:"isVisible"`
	Title       LocalizedText `json:"title"`
	Subtitle    LocalizedText `json:"subtitle"`
	BasePrice   string        `json:"basePrice"`
	GrossMargin string        `json:"grossMargin"`
	Points      []ModelPoint  `json:"points"`
}

// ModelPoint is one highlighted parameter of the pricing model.
type ModelPoint struct {
	Label  LocalizedText `json:"label"`
	Detail LocalizedText `json:"detail"`
	Value  string        `json:"value"`
}

// ProcessSection lists the phases of opening a franchise store.
type ProcessSection struct {
	Visible  bool           `json:"isVisible"`
	Title    LocalizedText  `json:"title"`
	Subtitle LocalizedText  `json:"subtitle"`
	Phases   []ProcessPhase `json:"phases"`
}

// ProcessPhase is one phase with what the brand provides and what the
// franchisee commits to.
type ProcessPhase struct {
	Name        LocalizedText   `json:"name"`
	Duration    LocalizedText   `json:"duration"`
	Benefits    []LocalizedText `json:"benefits"`
	Obligations []LocalizedText `json:"obligations"`
}

// ShowcaseSection is the store gallery.
type ShowcaseSection struct {
	Visible  bool           `json:"isVisible"`
	Title    LocalizedText  `json:"title"`
	Subtitle LocalizedText  `json:"subtitle"`
	Items    []ShowcaseItem `json:"items"`
}

// ShowcaseItem pairs an image reference with a caption.
type ShowcaseItem struct {
	Caption LocalizedText `json:"caption"`
	Image   string        `json:"image"`
}

// ComparisonSection is the us-versus-them table.
type ComparisonSection struct {
	Visible     bool            `json:"isVisible"`
	Title       LocalizedText   `json:"title"`
	OursLabel   LocalizedText   `json:"oursLabel"`
	OthersLabel LocalizedText   `json:"othersLabel"`
	Rows        []ComparisonRow `json:"rows"`
}

// ComparisonRow is one category row of the comparison table.
type ComparisonRow struct {
	Category LocalizedText `json:"category"`
	Ours     LocalizedText `json:"ours"`
	Others   LocalizedText `json:"others"`
}

// FinancialsSection is the investment breakdown.
type FinancialsSection struct {
	Visible    bool           `json:"isVisible"`
	Title      LocalizedText  `json:"title"`
	Subtitle   LocalizedText  `json:"subtitle"`
	Disclaimer LocalizedText  `json:"disclaimer"`
	Rows       []FinancialRow `json:"rows"`
}

// FinancialRow is one line item of the investment breakdown.
type FinancialRow struct {
	Item   LocalizedText `json:"item"`
	Amount string        `json:"amount"`
	Note   LocalizedText `json:"note"`
}

// MenuHeaderSection is the heading above the product grid. The grid itself
// renders from the top-level Menu list.
type MenuHeaderSection struct {
	Visible  bool          `json:"isVisible"`
	Title    LocalizedText `json:"title"`
	Subtitle LocalizedText `json:"subtitle"`
}

// FAQSection holds the question/answer accordion.
type FAQSection struct {
	Visible bool          `json:"isVisible"`
	Title   LocalizedText `json:"title"`
	Items   []FAQItem     `json:"items"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question LocalizedText `json:"question"`
	Answer   LocalizedText `json:"answer"`
}

// PartnerSection frames the franchise-inquiry form.
type PartnerSection struct {
	Visible      bool            `json:"isVisible"`
	Title        LocalizedText   `json:"title"`
	Subtitle     LocalizedText   `json:"subtitle"`
	FormTitle    LocalizedText   `json:"formTitle"`
	Requirements []LocalizedText `json:"requirements"`
}

// FooterSection holds contact details and the closing slogan.
type FooterSection struct {
	Visible bool          `json:"isVisible"`
	Slogan  LocalizedText `json:"slogan"`
	Address LocalizedText `json:"address"`
	Phone   string        `json:"phone"`
	Email   string        `json:"email"`
	ICP     string        `json:"icp"`
}

// knownContentKeys are the top-level JSON keys owned by SiteContent. Any
// other key in a persisted document is preserved verbatim in Extra.
var knownContentKeys = map[string]struct{}{
	"hero": {}, "model": {}, "process": {}, "showcase": {},
	"comparison": {}, "financials": {}, "menuSection": {}, "faq": {},
	"partner": {}, "footer": {}, "menu": {}, "leads": {}, "library": {},
}

// siteContentAlias avoids recursing into the custom (un)marshalers.
type siteContentAlias SiteContent

// UnmarshalJSON decodes the known shape and stashes unknown top-level
// fields in Extra.
func (c *SiteContent) UnmarshalJSON(data []byte) error {
	var alias siteContentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if _, known := knownContentKeys[key]; known {
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		alias.Extra = raw
	}

	*c = SiteContent(alias)
	return nil
}

// MarshalJSON re-emits Extra alongside the known fields. Known fields win
// on key collision.
func (c SiteContent) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(siteContentAlias(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, val := range c.Extra {
		if _, exists := merged[key]; !exists {
			merged[key] = val
		}
	}
	return json.Marshal(merged)
}

// Clone returns a deep copy via a JSON round trip. The aggregate is small
// (page copy, not page assets) so this stays cheap enough for per-edit use.
func (c *SiteContent) Clone() *SiteContent {
	data, err := json.Marshal(c)
	if err != nil {
		panic("site content not serializable: " + err.Error())
	}
	var out SiteContent
	if err := json.Unmarshal(data, &out); err != nil {
		panic("site content clone failed: " + err.Error())
	}
	return &out
}
