package content

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jadebrew/site-manager/internal/models"
)

// Field paths address editable fields with dot notation, e.g. "hero.tagline",
// "faq.items.2.question", "process.phases.1.benefits.0", "menu.0.price".
// Every addressable field is declared here explicitly; dispatch between
// bilingual and plain fields is static, never inferred from value shape.

var (
	// ErrUnknownPath is returned for a path that names no declared field.
	ErrUnknownPath = errors.New("unknown content path")
	// ErrIndexOutOfRange is returned when a path indexes past a list's end.
	ErrIndexOutOfRange = errors.New("list index out of range")
)

// FieldRef points at exactly one editable field inside a SiteContent.
// Exactly one of Text and Plain is non-nil.
type FieldRef struct {
	Text  *models.LocalizedText
	Plain *string
}

// Resolve returns a reference to the field named by path, into the given
// aggregate. Callers that intend to mutate must resolve against a clone.
func Resolve(c *models.SiteContent, path string) (FieldRef, error) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return FieldRef{}, pathErr(path)
	}

	switch parts[0] {
	case "hero":
		if len(parts) != 2 {
			return FieldRef{}, pathErr(path)
		}
		switch parts[1] {
		case "title":
			return text(&c.Hero.Title), nil
		case "tagline":
			return text(&c.Hero.Tagline), nil
		case "subtitle":
			return text(&c.Hero.Subtitle), nil
		case "ctaLabel":
			return text(&c.Hero.CTALabel), nil
		case "backgroundImage":
			return plain(&c.Hero.BackgroundImage), nil
		}

	case "model":
		switch {
		case len(parts) == 2:
			switch parts[1] {
			case "title":
				return text(&c.Model.Title), nil
			case "subtitle":
				return text(&c.Model.Subtitle), nil
			case "basePrice":
				return plain(&c.Model.BasePrice), nil
			case "grossMargin":
				return plain(&c.Model.GrossMargin), nil
			}
		case len(parts) == 4 && parts[1] == "points":
			i, err := listIndex(parts[2], len(c.Model.Points))
			if err != nil {
				return FieldRef{}, err
			}
			p := &c.Model.Points[i]
			switch parts[3] {
			case "label":
				return text(&p.Label), nil
			case "detail":
				return text(&p.Detail), nil
			case "value":
				return plain(&p.Value), nil
			}
		}

	case "process":
		switch {
		case len(parts) == 2:
			switch parts[1] {
			case "title":
				return text(&c.Process.Title), nil
			case "subtitle":
				return text(&c.Process.Subtitle), nil
			}
		case len(parts) >= 4 && parts[1] == "phases":
			i, err := listIndex(parts[2], len(c.Process.Phases))
			if err != nil {
				return FieldRef{}, err
			}
			ph := &c.Process.Phases[i]
			switch {
			case len(parts) == 4 && parts[3] == "name":
				return text(&ph.Name), nil
			case len(parts) == 4 && parts[3] == "duration":
				return text(&ph.Duration), nil
			case len(parts) == 5 && parts[3] == "benefits":
				j, err := listIndex(parts[4], len(ph.Benefits))
				if err != nil {
					return FieldRef{}, err
				}
				return text(&ph.Benefits[j]), nil
			case len(parts) == 5 && parts[3] == "obligations":
				j, err := listIndex(parts[4], len(ph.Obligations))
				if err != nil {
					return FieldRef{}, err
				}
				return text(&ph.Obligations[j]), nil
			}
		}

	case "showcase":
		switch {
		case len(parts) == 2:
			switch parts[1] {
			case "title":
				return text(&c.Showcase.Title), nil
			case "subtitle":
				return text(&c.Showcase.Subtitle), nil
			}
		case len(parts) == 4 && parts[1] == "items":
			i, err := listIndex(parts[2], len(c.Showcase.Items))
			if err != nil {
				return FieldRef{}, err
			}
			it := &c.Showcase.Items[i]
			switch parts[3] {
			case "caption":
				return text(&it.Caption), nil
			case "image":
				return plain(&it.Image), nil
			}
		}

	case "comparison":
		switch {
		case len(parts) == 2:
			switch parts[1] {
			case "title":
				return text(&c.Comparison.Title), nil
			case "oursLabel":
				return text(&c.Comparison.OursLabel), nil
			case "othersLabel":
				return text(&c.Comparison.OthersLabel), nil
			}
		case len(parts) == 4 && parts[1] == "rows":
			i, err := listIndex(parts[2], len(c.Comparison.Rows))
			if err != nil {
				return FieldRef{}, err
			}
			row := &c.Comparison.Rows[i]
			switch parts[3] {
			case "category":
				return text(&row.Category), nil
			case "ours":
				return text(&row.Ours), nil
			case "others":
				return text(&row.Others), nil
			}
		}

	case "financials":
		switch {
		case len(parts) == 2:
			switch parts[1] {
			case "title":
				return text(&c.Financials.Title), nil
			case "subtitle":
				return text(&c.Financials.Subtitle), nil
			case "disclaimer":
				return text(&c.Financials.Disclaimer), nil
			}
		case len(parts) == 4 && parts[1] == "rows":
			i, err := listIndex(parts[2], len(c.Financials.Rows))
			if err != nil {
				return FieldRef{}, err
			}
			row := &c.Financials.Rows[i]
			switch parts[3] {
			case "item":
				return text(&row.Item), nil
			case "amount":
				return plain(&row.Amount), nil
			case "note":
				return text(&row.Note), nil
			}
		}

	case "menuSection":
		if len(parts) != 2 {
			return FieldRef{}, pathErr(path)
		}
		switch parts[1] {
		case "title":
			return text(&c.MenuSection.Title), nil
		case "subtitle":
			return text(&c.MenuSection.Subtitle), nil
		}

	case "faq":
		switch {
		case len(parts) == 2 && parts[1] == "title":
			return text(&c.FAQ.Title), nil
		case len(parts) == 4 && parts[1] == "items":
			i, err := listIndex(parts[2], len(c.FAQ.Items))
			if err != nil {
				return FieldRef{}, err
			}
			it := &c.FAQ.Items[i]
			switch parts[3] {
			case "question":
				return text(&it.Question), nil
			case "answer":
				return text(&it.Answer), nil
			}
		}

	case "partner":
		switch {
		case len(parts) == 2:
			switch parts[1] {
			case "title":
				return text(&c.Partner.Title), nil
			case "subtitle":
				return text(&c.Partner.Subtitle), nil
			case "formTitle":
				return text(&c.Partner.FormTitle), nil
			}
		case len(parts) == 3 && parts[1] == "requirements":
			i, err := listIndex(parts[2], len(c.Partner.Requirements))
			if err != nil {
				return FieldRef{}, err
			}
			return text(&c.Partner.Requirements[i]), nil
		}

	case "footer":
		if len(parts) != 2 {
			return FieldRef{}, pathErr(path)
		}
		switch parts[1] {
		case "slogan":
			return text(&c.Footer.Slogan), nil
		case "address":
			return text(&c.Footer.Address), nil
		case "phone":
			return plain(&c.Footer.Phone), nil
		case "email":
			return plain(&c.Footer.Email), nil
		case "icp":
			return plain(&c.Footer.ICP), nil
		}

	case "menu":
		if len(parts) != 3 {
			return FieldRef{}, pathErr(path)
		}
		i, err := listIndex(parts[1], len(c.Menu))
		if err != nil {
			return FieldRef{}, err
		}
		it := &c.Menu[i]
		switch parts[2] {
		case "name":
			return text(&it.Name), nil
		case "tag":
			return text(&it.Tag), nil
		case "desc":
			return text(&it.Desc), nil
		case "price":
			return plain(&it.Price), nil
		case "eng":
			return plain(&it.Eng), nil
		case "image":
			return plain(&it.Image), nil
		case "ingredients":
			return plain(&it.Ingredients), nil
		}
	}

	return FieldRef{}, pathErr(path)
}

// ListRef exposes the mutations of one ordered list inside a SiteContent.
type ListRef struct {
	Len    func() int
	Append func()
	Remove func(i int)
	Move   func(from, to int)
}

// ResolveList returns the list named by path. As with Resolve, mutating
// callers must resolve against a clone.
func ResolveList(c *models.SiteContent, path string) (*ListRef, error) {
	parts := strings.Split(path, ".")

	switch {
	case path == "model.points":
		return listRef(&c.Model.Points, newModelPoint), nil
	case path == "process.phases":
		return listRef(&c.Process.Phases, newProcessPhase), nil
	case path == "showcase.items":
		return listRef(&c.Showcase.Items, newShowcaseItem), nil
	case path == "comparison.rows":
		return listRef(&c.Comparison.Rows, newComparisonRow), nil
	case path == "financials.rows":
		return listRef(&c.Financials.Rows, newFinancialRow), nil
	case path == "faq.items":
		return listRef(&c.FAQ.Items, newFAQItem), nil
	case path == "partner.requirements":
		return listRef(&c.Partner.Requirements, newRequirement), nil
	case path == "menu":
		return listRef(&c.Menu, newMenuItem), nil
	case len(parts) == 4 && parts[0] == "process" && parts[1] == "phases":
		i, err := listIndex(parts[2], len(c.Process.Phases))
		if err != nil {
			return nil, err
		}
		ph := &c.Process.Phases[i]
		switch parts[3] {
		case "benefits":
			return listRef(&ph.Benefits, newListEntry), nil
		case "obligations":
			return listRef(&ph.Obligations, newListEntry), nil
		}
	}

	return nil, pathErr(path)
}

func listRef[T any](slice *[]T, template func() T) *ListRef {
	return &ListRef{
		Len: func() int { return len(*slice) },
		Append: func() {
			*slice = append(*slice, template())
		},
		Remove: func(i int) {
			s := *slice
			*slice = append(s[:i:i], s[i+1:]...)
		},
		Move: func(from, to int) {
			s := append([]T(nil), *slice...)
			item := s[from]
			s = append(s[:from], s[from+1:]...)
			s = append(s[:to], append([]T{item}, s[to:]...)...)
			*slice = s
		},
	}
}

// New-item templates seed both language slots identically; the admin's
// first edit in either language triggers translation of the sibling slot.

func both(s string) models.LocalizedText {
	return models.LocalizedText{ZH: s, EN: s}
}

func newModelPoint() models.ModelPoint {
	return models.ModelPoint{Label: both("新条目"), Detail: both("点击编辑说明"), Value: "0"}
}

func newProcessPhase() models.ProcessPhase {
	return models.ProcessPhase{
		Name:        both("新阶段"),
		Duration:    both("待定"),
		Benefits:    []models.LocalizedText{both("点击编辑权益")},
		Obligations: []models.LocalizedText{both("点击编辑义务")},
	}
}

func newShowcaseItem() models.ShowcaseItem {
	return models.ShowcaseItem{Caption: both("新门店")}
}

func newComparisonRow() models.ComparisonRow {
	return models.ComparisonRow{
		Category: both("新维度"),
		Ours:     both("点击编辑"),
		Others:   both("点击编辑"),
	}
}

func newFinancialRow() models.FinancialRow {
	return models.FinancialRow{Item: both("新项目"), Amount: "0", Note: both("")}
}

func newFAQItem() models.FAQItem {
	return models.FAQItem{Question: both("新问题"), Answer: both("点击编辑答案")}
}

func newRequirement() models.LocalizedText {
	return both("点击编辑条件")
}

func newListEntry() models.LocalizedText {
	return both("点击编辑")
}

func newMenuItem() models.MenuItem {
	// The id is assigned by the state manager, which knows the whole list.
	return models.MenuItem{
		Name:  both("新品"),
		Tag:   both("上新"),
		Desc:  both("点击编辑介绍"),
		Price: "0",
	}
}

func text(t *models.LocalizedText) FieldRef {
	return FieldRef{Text: t}
}

func plain(s *string) FieldRef {
	return FieldRef{Plain: s}
}

func listIndex(part string, length int) (int, error) {
	i, err := strconv.Atoi(part)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPath, part)
	}
	if i >= length {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, length)
	}
	return i, nil
}

func pathErr(path string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPath, path)
}
