// Package content loads the static tables the site is built from: the owner's
// profile, projects, accolades, affiliations and testimonials.
//
// The tables ship embedded in the binary. A directory on disk with the same
// file names can replace them without a rebuild. Every file is checked against
// its JSON Schema before it is decoded.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"lumakin.dev/internal/models"
)

//go:embed data/*.json
var embeddedData embed.FS

//go:embed schemas/*.json
var embeddedSchemas embed.FS

const (
	profileFile      = "profile.json"
	projectsFile     = "projects.json"
	accoladesFile    = "accolades.json"
	affiliationsFile = "affiliations.json"
	testimonialsFile = "testimonials.json"
)

// Store holds every table, already in display order.
type Store struct {
	Profile      models.PersonalInfo
	Projects     []models.Project
	Accolades    []models.Accolade
	Affiliations []models.Affiliation
	Testimonials []models.Testimonial
}

// Load reads the tables from dir, or from the embedded copy when dir is empty.
func Load(dir string) (*Store, error) {
	if dir == "" {
		sub, err := fs.Sub(embeddedData, "data")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded data: %w", err)
		}
		return LoadFS(sub)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat data dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads the tables from fsys. File names are fixed; see the data
// directory of this package.
func LoadFS(fsys fs.FS) (*Store, error) {
	var (
		profile      models.PersonalInfo
		projects     models.ProjectList
		accolades    models.AccoladeList
		affiliations models.AffiliationList
		testimonials models.TestimonialList
	)

	files := []struct {
		name string
		dst  any
	}{
		{profileFile, &profile},
		{projectsFile, &projects},
		{accoladesFile, &accolades},
		{affiliationsFile, &affiliations},
		{testimonialsFile, &testimonials},
	}

	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	s := &Store{
		Profile:      profile,
		Projects:     projects.Projects,
		Accolades:    accolades.Accolades,
		Affiliations: affiliations.Affiliations,
		Testimonials: testimonials.Testimonials,
	}
	SortProjects(s.Projects)
	SortAccolades(s.Accolades)
	return s, nil
}

// SortProjects orders projects newest first. Projects from the same year keep
// their declared order.
func SortProjects(projects []models.Project) {
	slices.SortStableFunc(projects, func(a, b models.Project) int {
		return b.Year - a.Year
	})
}

// SortAccolades orders accolades by numeric year, newest first. Accolades from
// the same year keep their declared order.
func SortAccolades(accolades []models.Accolade) {
	slices.SortStableFunc(accolades, func(a, b models.Accolade) int {
		return b.YearValue() - a.YearValue()
	})
}

// decodeFile validates name against its schema and unmarshals it into dst.
func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := Validate(name, data); err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Validate checks a data file's contents against the schema for name.
func Validate(name string, data []byte) error {
	schemaName := "schemas/" + strings.TrimSuffix(name, ".json") + ".schema.json"
	schema, err := embeddedSchemas.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("no schema for %s: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{
		File:   name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return verr
}

// ValidationError lists the schema violations found in one data file.
type ValidationError struct {
	File   string
	Errors []FieldError
}

// FieldError is a single schema violation.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s failed validation:", e.File)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}
