// Package dataset loads the housing CSV into an immutable in-memory record
// set. All field normalization (booleans, rent, bedrooms) happens once here;
// nothing downstream mutates a Listing.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"housing_finder/internal/domain"
)

// Required header columns. Load fails when any is absent.
var requiredColumns = []string{
	"id", "address", "city", "state", "zip_code",
	"monthly_rent", "bedrooms",
	"agent_name", "agent_phone", "agent_email",
	"languages_spoken",
	"section8_accepted", "hud_approved", "low_income_eligible",
	"nearby_transit", "utilities_included", "pets_allowed",
	"accessibility_features", "income_limit_percent_ami",
}

// Dataset is an ordered, read-only collection of listings. Safe to share
// across request handlers without locking: no writer exists after Load.
type Dataset struct {
	listings []domain.Listing
	byID     map[int64]int
}

// Load reads and normalizes the CSV at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV from r. Split out from Load so tests and future sources
// can feed any reader.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}

	var listings []domain.Listing
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		field := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		l := domain.Listing{
			ID:                    parseInt64(field("id")),
			Address:               strings.TrimSpace(field("address")),
			City:                  strings.TrimSpace(field("city")),
			State:                 strings.TrimSpace(field("state")),
			ZipCode:               strings.TrimSpace(field("zip_code")),
			MonthlyRent:           parseRent(field("monthly_rent")),
			Bedrooms:              parseBedrooms(field("bedrooms")),
			AgentName:             strings.TrimSpace(field("agent_name")),
			AgentPhone:            strings.TrimSpace(field("agent_phone")),
			AgentEmail:            strings.TrimSpace(field("agent_email")),
			LanguagesSpoken:       strings.TrimSpace(field("languages_spoken")),
			Section8Accepted:      ParseBool(field("section8_accepted")),
			HUDApproved:           ParseBool(field("hud_approved")),
			LowIncomeEligible:     ParseBool(field("low_income_eligible")),
			NearbyTransit:         ParseBool(field("nearby_transit")),
			UtilitiesIncluded:     ParseBool(field("utilities_included")),
			PetsAllowed:           ParseBool(field("pets_allowed")),
			AccessibilityFeatures: strings.TrimSpace(field("accessibility_features")),
			IncomeLimitAMI:        parseOptFloat(field("income_limit_percent_ami")),
		}
		listings = append(listings, l)
	}
	return FromListings(listings), nil
}

// FromListings wraps already-normalized listings (e.g. loaded from MySQL).
func FromListings(ls []domain.Listing) *Dataset {
	idx := make(map[int64]int, len(ls))
	for i, l := range ls {
		if _, dup := idx[l.ID]; !dup {
			idx[l.ID] = i
		}
	}
	return &Dataset{listings: ls, byID: idx}
}

// ParseBool is the tolerant boolean coercion used for the amenity flag
// columns: "yes"/"true"/"1" (case-insensitive, trimmed) are true, everything
// else including empty is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

// parseRent returns nil for unparsable/absent values. Missing rent is
// excluded from range comparisons, never treated as zero.
func parseRent(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

func parseBedrooms(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}

func parseOptFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Listings returns the ordered record set. Callers must treat it as
// read-only.
func (d *Dataset) Listings() []domain.Listing { return d.listings }

func (d *Dataset) Len() int { return len(d.listings) }

// ByID returns the listing with the given identifier.
func (d *Dataset) ByID(id int64) (domain.Listing, error) {
	i, ok := d.byID[id]
	if !ok {
		return domain.Listing{}, domain.ErrNotFound
	}
	return d.listings[i], nil
}

// Cities returns the sorted distinct city names in the dataset.
func (d *Dataset) Cities() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range d.listings {
		if l.City == "" {
			continue
		}
		if _, ok := seen[l.City]; ok {
			continue
		}
		seen[l.City] = struct{}{}
		out = append(out, l.City)
	}
	sort.Strings(out)
	return out
}

// Languages returns the sorted distinct languages spoken across all agents.
func (d *Dataset) Languages() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range d.listings {
		for _, lang := range strings.Split(l.LanguagesSpoken, ",") {
			lang = strings.TrimSpace(lang)
			if lang == "" {
				continue
			}
			if _, ok := seen[lang]; ok {
				continue
			}
			seen[lang] = struct{}{}
			out = append(out, lang)
		}
	}
	sort.Strings(out)
	return out
}

// PriceRange returns the min and max monthly rent over listings whose rent is
// known. Both are zero when no listing carries a rent.
func (d *Dataset) PriceRange() (float64, float64) {
	var lo, hi float64
	first := true
	for _, l := range d.listings {
		if l.MonthlyRent == nil {
			continue
		}
		r := *l.MonthlyRent
		if first {
			lo, hi = r, r
			first = false
			continue
		}
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	return lo, hi
}
