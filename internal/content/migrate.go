package content

import (
	"encoding/json"

	"github.com/jadebrew/site-manager/internal/models"
)

// Migrate upgrades an arbitrary persisted document (possibly written by an
// older single-language version of the system, or hand-edited) into the
// current schema. It starts from the hard-coded defaults, lets the raw
// document win wherever it carries data, and renormalizes every known
// bilingual field against that field's own default pair. Pure: no I/O, the
// input map is never mutated.
func Migrate(raw map[string]any) *models.SiteContent {
	c := Defaults()
	if len(raw) == 0 {
		return c
	}
	def := Defaults()

	migrateHero(&c.Hero, raw["hero"], def.Hero)
	migrateModel(&c.Model, raw["model"], def.Model)
	migrateProcess(&c.Process, raw["process"], def.Process)
	migrateShowcase(&c.Showcase, raw["showcase"], def.Showcase)
	migrateComparison(&c.Comparison, raw["comparison"], def.Comparison)
	migrateFinancials(&c.Financials, raw["financials"], def.Financials)
	migrateMenuHeader(&c.MenuSection, raw["menuSection"], def.MenuSection)
	migrateFAQ(&c.FAQ, raw["faq"], def.FAQ)
	migratePartner(&c.Partner, raw["partner"], def.Partner)
	migrateFooter(&c.Footer, raw["footer"], def.Footer)

	c.Menu = migrateMenu(raw["menu"], def.Menu)
	c.Leads = migrateLeads(raw["leads"])
	c.Library = migrateLibrary(raw["library"])
	c.Extra = extraFields(raw)

	return c
}

func migrateHero(s *models.HeroSection, raw any, def models.HeroSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Tagline = ToLocalized(m["tagline"], def.Tagline)
	s.Subtitle = ToLocalized(m["subtitle"], def.Subtitle)
	s.CTALabel = ToLocalized(m["ctaLabel"], def.CTALabel)
	s.BackgroundImage = stringOr(m, "backgroundImage", def.BackgroundImage)
}

func migrateModel(s *models.ModelSection, raw any, def models.ModelSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Subtitle = ToLocalized(m["subtitle"], def.Subtitle)
	s.BasePrice = stringOr(m, "basePrice", def.BasePrice)
	s.GrossMargin = stringOr(m, "grossMargin", def.GrossMargin)
	s.Points = migrateList(m["points"], def.Points, func(raw any, d models.ModelPoint) models.ModelPoint {
		im, _ := asMap(raw)
		return models.ModelPoint{
			Label:  ToLocalized(im["label"], d.Label),
			Detail: ToLocalized(im["detail"], d.Detail),
			Value:  stringOr(im, "value", d.Value),
		}
	})
}

func migrateProcess(s *models.ProcessSection, raw any, def models.ProcessSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Subtitle = ToLocalized(m["subtitle"], def.Subtitle)
	s.Phases = migrateList(m["phases"], def.Phases, func(raw any, d models.ProcessPhase) models.ProcessPhase {
		im, _ := asMap(raw)
		return models.ProcessPhase{
			Name:        ToLocalized(im["name"], d.Name),
			Duration:    ToLocalized(im["duration"], d.Duration),
			Benefits:    migrateTextList(im["benefits"], d.Benefits),
			Obligations: migrateTextList(im["obligations"], d.Obligations),
		}
	})
}

func migrateShowcase(s *models.ShowcaseSection, raw any, def models.ShowcaseSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Subtitle = ToLocalized(m["subtitle"], def.Subtitle)
	s.Items = migrateList(m["items"], def.Items, func(raw any, d models.ShowcaseItem) models.ShowcaseItem {
		im, _ := asMap(raw)
		return models.ShowcaseItem{
			Caption: ToLocalized(im["caption"], d.Caption),
			Image:   stringOr(im, "image", d.Image),
		}
	})
}

func migrateComparison(s *models.ComparisonSection, raw any, def models.ComparisonSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.OursLabel = ToLocalized(m["oursLabel"], def.OursLabel)
	s.OthersLabel = ToLocalized(m["othersLabel"], def.OthersLabel)
	s.Rows = migrateList(m["rows"], def.Rows, func(raw any, d models.ComparisonRow) models.ComparisonRow {
		im, _ := asMap(raw)
		return models.ComparisonRow{
			Category: ToLocalized(im["category"], d.Category),
			Ours:     ToLocalized(im["ours"], d.Ours),
			Others:   ToLocalized(im["others"], d.Others),
		}
	})
}

func migrateFinancials(s *models.FinancialsSection, raw any, def models.FinancialsSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Subtitle = ToLocalized(m["subtitle"], def.Subtitle)
	s.Disclaimer = ToLocalized(m["disclaimer"], def.Disclaimer)
	s.Rows = migrateList(m["rows"], def.Rows, func(raw any, d models.FinancialRow) models.FinancialRow {
		im, _ := asMap(raw)
		return models.FinancialRow{
			Item:   ToLocalized(im["item"], d.Item),
			Amount: stringOr(im, "amount", d.Amount),
			Note:   ToLocalized(im["note"], d.Note),
		}
	})
}

func migrateMenuHeader(s *models.MenuHeaderSection, raw any, def models.MenuHeaderSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Subtitle = ToLocalized(m["subtitle"], def.Subtitle)
}

func migrateFAQ(s *models.FAQSection, raw any, def models.FAQSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Items = migrateList(m["items"], def.Items, func(raw any, d models.FAQItem) models.FAQItem {
		im, _ := asMap(raw)
		return models.FAQItem{
			Question: ToLocalized(im["question"], d.Question),
			Answer:   ToLocalized(im["answer"], d.Answer),
		}
	})
}

func migratePartner(s *models.PartnerSection, raw any, def models.PartnerSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Title = ToLocalized(m["title"], def.Title)
	s.Subtitle = ToLocalized(m["subtitle"], def.Subtitle)
	s.FormTitle = ToLocalized(m["formTitle"], def.FormTitle)
	s.Requirements = migrateTextList(m["requirements"], def.Requirements)
}

func migrateFooter(s *models.FooterSection, raw any, def models.FooterSection) {
	m, ok := asMap(raw)
	if !ok {
		return
	}
	s.Visible = boolOr(m, "isVisible", def.Visible)
	s.Slogan = ToLocalized(m["slogan"], def.Slogan)
	s.Address = ToLocalized(m["address"], def.Address)
	s.Phone = stringOr(m, "phone", def.Phone)
	s.Email = stringOr(m, "email", def.Email)
	s.ICP = stringOr(m, "icp", def.ICP)
}

func migrateMenu(raw any, defs []models.MenuItem) []models.MenuItem {
	items := migrateList(raw, defs, func(raw any, d models.MenuItem) models.MenuItem {
		im, _ := asMap(raw)
		return models.MenuItem{
			ID:          intOr(im, "id", d.ID),
			Name:        ToLocalized(im["name"], d.Name),
			Tag:         ToLocalized(im["tag"], d.Tag),
			Desc:        ToLocalized(im["desc"], d.Desc),
			Price:       stringOr(im, "price", d.Price),
			Eng:         stringOr(im, "eng", d.Eng),
			Image:       stringOr(im, "image", d.Image),
			Ingredients: stringOr(im, "ingredients", d.Ingredients),
		}
	})

	// Menu ids must be unique; a hand-edited document can violate that.
	seen := make(map[int]bool, len(items))
	next := 0
	for _, it := range items {
		if it.ID > next {
			next = it.ID
		}
	}
	for i := range items {
		if items[i].ID == 0 || seen[items[i].ID] {
			next++
			items[i].ID = next
		}
		seen[items[i].ID] = true
	}
	return items
}

func migrateLeads(raw any) []models.Lead {
	arr, ok := raw.([]any)
	if !ok {
		return []models.Lead{}
	}
	leads := make([]models.Lead, 0, len(arr))
	for _, item := range arr {
		im, ok := asMap(item)
		if !ok {
			continue
		}
		lead := models.Lead{
			ID:        int64Or(im, "id", 0),
			Name:      stringOr(im, "name", ""),
			Phone:     stringOr(im, "phone", ""),
			City:      stringOr(im, "city", ""),
			Message:   stringOr(im, "message", ""),
			Timestamp: int64Or(im, "timestamp", 0),
			Status:    models.LeadStatus(stringOr(im, "status", "")),
		}
		if !lead.Status.Valid() {
			lead.Status = models.LeadStatusNew
		}
		if lead.ID == 0 {
			lead.ID = lead.Timestamp
		}
		leads = append(leads, lead)
	}
	return leads
}

func migrateLibrary(raw any) []string {
	arr, ok := raw.([]any)
	if !ok {
		return []string{}
	}
	seen := make(map[string]bool, len(arr))
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok || s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// migrateList migrates each present raw item against the default item at
// the same index when one exists, else against the zero default. The raw
// length always wins: lists are never truncated or padded to match the
// default length.
func migrateList[T any](raw any, defs []T, item func(raw any, def T) T) []T {
	arr, ok := raw.([]any)
	if !ok {
		return append([]T(nil), defs...)
	}
	out := make([]T, 0, len(arr))
	var zero T
	for i, rawItem := range arr {
		def := zero
		if i < len(defs) {
			def = defs[i]
		}
		out = append(out, item(rawItem, def))
	}
	return out
}

func migrateTextList(raw any, defs []models.LocalizedText) []models.LocalizedText {
	return migrateList(raw, defs, func(raw any, def models.LocalizedText) models.LocalizedText {
		return ToLocalized(raw, def)
	})
}

func extraFields(raw map[string]any) map[string]json.RawMessage {
	var extra map[string]json.RawMessage
	for key, val := range raw {
		if isKnownContentKey(key) {
			continue
		}
		data, err := json.Marshal(val)
		if err != nil {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[key] = data
	}
	return extra
}

func isKnownContentKey(key string) bool {
	switch key {
	case "hero", "model", "process", "showcase", "comparison", "financials",
		"menuSection", "faq", "partner", "footer", "menu", "leads", "library":
		return true
	}
	return false
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func stringOr(m map[string]any, key, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

func boolOr(m map[string]any, key string, def bool) bool {
	if m == nil {
		return def
	}
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

func intOr(m map[string]any, key string, def int) int {
	return int(int64Or(m, key, int64(def)))
}

func int64Or(m map[string]any, key string, def int64) int64 {
	if m == nil {
		return def
	}
	switch n := m[key].(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	return def
}
