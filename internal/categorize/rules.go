package categorize

import (
	"context"
	"fmt"
	"strings"

	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

// NeedsPeopleCategorisation is the maintenance flag suffix raised when
// a depicted person could not be categorized precisely.
const NeedsPeopleCategorisation = "needing categorisation (people)"

// PotentialDuplicates is the maintenance flag suffix raised when a
// record's source URL already has a published asset.
const PotentialDuplicates = "with potential duplicates"

// AlwaysAddRule adds curated collection categories exempt from
// existence checks.
func AlwaysAddRule(cats ...string) Rule {
	return Rule{
		Name: "always-add",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			for _, cat := range cats {
				set.AddContent(cat)
			}
			return nil
		},
	}
}

// TemporalTheatreRule derives a per-decade or per-year theatre category
// from the event date. The decade form is used when the source date was
// decade-granular, the exact-year form otherwise. Candidates are
// existence-checked.
func TemporalTheatreRule(env *Env) Rule {
	return Rule{
		Name: "temporal-theatre",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			var tentative string
			switch {
			case rec.DecadeYear != 0:
				tentative = fmt.Sprintf("Theatre in the %ds", rec.DecadeYear)
			case rec.Event != nil:
				tentative = fmt.Sprintf("%d in theatre", rec.Event.Year)
			default:
				return nil
			}
			exists, err := env.Cache.Exists(ctx, tentative)
			if err != nil {
				return err
			}
			if exists {
				set.AddContent(tentative)
			}
			return nil
		},
	}
}

// TemporalPortraitRule derives a per-year portrait photograph category,
// existence-checked.
func TemporalPortraitRule(env *Env) Rule {
	return Rule{
		Name: "temporal-portrait",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			if rec.Event == nil {
				return nil
			}
			tentative := fmt.Sprintf("%d portrait photographs", rec.Event.Year)
			exists, err := env.Cache.Exists(ctx, tentative)
			if err != nil {
				return err
			}
			if exists {
				set.AddContent(tentative)
			}
			return nil
		},
	}
}

// fallbackBucket names the broad occupational category for an
// unresolved depicted person of the given gender.
func fallbackBucket(gender normalize.Gender) string {
	switch gender {
	case normalize.GenderWoman:
		return "Actresses from Sweden"
	case normalize.GenderMan:
		return "Actors from Sweden"
	default:
		return "Performers from Sweden"
	}
}

// DepictedRule resolves each depicted person through the given mapping
// table. A resolved person contributes their curated category. An
// unresolved person always contributes both an imprecise gendered
// fallback category and the needs-categorisation maintenance flag;
// the two are never split.
func DepictedRule(env *Env, table string) Rule {
	return Rule{
		Name: "depicted",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			for i := range rec.Depicted {
				person := &rec.Depicted[i]
				if ref, ok := env.Mappings.Resolve(table, person.RawName); ok {
					set.AddContent(ref.CommonsCat)
					set.AddContent(ref.Category)
					person.ExternalID = ref.Wikidata
					continue
				}
				set.AddContent(fallbackBucket(person.Gender))
				set.AddMeta(env.MaintenanceCat(NeedsPeopleCategorisation))
			}
			return nil
		},
	}
}

// PortraitRule derives gendered portrait categories from the image type
// and the single depicted person's gender, plus the costume category
// for role portraits. The candidates are curated names.
func PortraitRule() Rule {
	return Rule{
		Name: "portrait",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			imageType := strings.ToLower(rec.ImageType)
			if strings.Contains(imageType, "porträtt") && len(rec.Depicted) == 1 {
				switch rec.Depicted[0].Gender {
				case normalize.GenderWoman:
					set.AddContent("Portrait photographs of women")
				case normalize.GenderMan:
					set.AddContent("Portrait photographs of men")
				}
			}
			if imageType == "rollporträtt" {
				set.AddContent("Theatrical costume in portraits")
			}
			return nil
		},
	}
}

// ImageTypeRule derives gendered portrait and costume categories from
// the image type and the record-level gender, existence-checking every
// candidate.
func ImageTypeRule(env *Env) Rule {
	return Rule{
		Name: "image-type",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			var tentative []string
			imageType := strings.ToLower(rec.ImageType)
			if strings.Contains(imageType, "porträtt") {
				switch rec.Gender {
				case normalize.GenderWoman:
					tentative = append(tentative, "Portrait photographs of women")
				case normalize.GenderMan:
					tentative = append(tentative, "Portrait photographs of men")
				}
			}
			if imageType == "rollporträtt" {
				tentative = append(tentative, "Theatrical costume in portraits")
			}
			for _, cat := range tentative {
				exists, err := env.Cache.Exists(ctx, cat)
				if err != nil {
					return err
				}
				if exists {
					set.AddContent(cat)
				}
			}
			return nil
		},
	}
}

// CostumeRule adds the costume category when a portrait record carries
// the stage-costume keyword.
func CostumeRule() Rule {
	return Rule{
		Name: "costume",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			if !strings.Contains(strings.ToLower(rec.ImageType), "porträtt") {
				return nil
			}
			for _, keyword := range rec.Keywords {
				if keyword == "scenkostymer" {
					set.AddContent("Theatrical costume in portraits")
					break
				}
			}
			return nil
		},
	}
}

// VenueRule resolves the ensemble field through its mapping table,
// defaulting to the generic parent category when unresolved. The
// default is acceptable, not merely tolerated: no maintenance flag is
// raised on a miss.
func VenueRule(env *Env, table, defaultCat string) Rule {
	return Rule{
		Name: "venue",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			if rec.Ensemble != "" {
				if ref, ok := env.Mappings.Resolve(table, rec.Ensemble); ok {
					set.AddContent(ref.Category)
					return nil
				}
			}
			set.AddContent(defaultCat)
			return nil
		},
	}
}

// PlayRule resolves the production title through the plays table.
func PlayRule(env *Env, table string) Rule {
	return Rule{
		Name: "play",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			if rec.PlayTitle == "" {
				return nil
			}
			if ref, ok := env.Mappings.Resolve(table, rec.PlayTitle); ok {
				set.AddContent(ref.Category)
			}
			return nil
		},
	}
}

// CreatorRule resolves the creator through the photographers table. An
// unmatched creator contributes nothing; creator attribution absence is
// not a triage concern.
func CreatorRule(env *Env, table string) Rule {
	return Rule{
		Name: "creator",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			if rec.Creator == "" {
				return nil
			}
			if ref, ok := env.Mappings.Resolve(table, rec.Creator); ok {
				set.AddContent(ref.CommonsCat)
			}
			return nil
		},
	}
}

// Studio is one known photographer studio: a lowercase substring the
// creator field is matched against, and the category it contributes.
type Studio struct {
	Match    string
	Category string
}

// StudioRule matches the creator against an ordered list of known
// photographer studios by substring, the way the studio names actually
// appear in the export. The first match wins; one record is attributed
// to one studio.
func StudioRule(studios []Studio) Rule {
	return Rule{
		Name: "studio",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			creator := strings.ToLower(rec.Creator)
			if creator == "" {
				return nil
			}
			for _, studio := range studios {
				if strings.Contains(creator, studio.Match) {
					set.AddContent(studio.Category)
					break
				}
			}
			return nil
		},
	}
}

// DepictedNameRule existence-checks each depicted person's cleaned name
// directly as a category, for records whose people were never run
// through a curated mapping. Any person left without a category raises
// the needs-categorisation flag, as does a record with no people at
// all: both leave nobody precisely categorized.
func DepictedNameRule(env *Env) Rule {
	return Rule{
		Name: "depicted-name",
		Apply: func(ctx context.Context, rec *record.Normalized, set *Set) error {
			matched := 0
			for _, person := range rec.Depicted {
				exists, err := env.Cache.Exists(ctx, person.Name)
				if err != nil {
					return err
				}
				if exists {
					set.AddContent(person.Name)
					matched++
				}
			}
			if matched == 0 || matched < len(rec.Depicted) {
				set.AddMeta(env.MaintenanceCat(NeedsPeopleCategorisation))
			}
			return nil
		},
	}
}
