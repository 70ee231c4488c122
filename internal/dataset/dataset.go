package dataset

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"artistly/internal/domain/application"
	"artistly/internal/domain/catalog"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	artistsFile     = "data/artists.yaml"
	categoriesFile  = "data/categories.yaml"
	submissionsFile = "data/submissions.yaml"
)

// Loader reads the catalog from YAML files, falling back to the embedded
// dataset for any path left empty.
type Loader struct {
	ArtistsPath    string
	CategoriesPath string
}

func NewLoader(artistsPath, categoriesPath string) *Loader {
	return &Loader{ArtistsPath: artistsPath, CategoriesPath: categoriesPath}
}

func (l *Loader) Artists(_ context.Context) ([]catalog.Artist, error) {
	data, err := read(l.ArtistsPath, artistsFile)
	if err != nil {
		return nil, err
	}
	return DecodeArtists(data)
}

func (l *Loader) Categories(_ context.Context) ([]catalog.Category, error) {
	data, err := read(l.CategoriesPath, categoriesFile)
	if err != nil {
		return nil, err
	}
	return DecodeCategories(data)
}

func DecodeArtists(data []byte) ([]catalog.Artist, error) {
	var artists []catalog.Artist
	if err := yaml.Unmarshal(data, &artists); err != nil {
		return nil, fmt.Errorf("decode artists: %w", err)
	}
	seen := make(map[string]struct{}, len(artists))
	for i, artist := range artists {
		if strings.TrimSpace(artist.ID) == "" {
			return nil, fmt.Errorf("artist #%d: id is required", i+1)
		}
		if strings.TrimSpace(artist.Name) == "" {
			return nil, fmt.Errorf("artist %q: name is required", artist.ID)
		}
		if _, ok := seen[artist.ID]; ok {
			return nil, fmt.Errorf("artist %q: duplicate id", artist.ID)
		}
		seen[artist.ID] = struct{}{}
	}
	if artists == nil {
		artists = []catalog.Artist{}
	}
	return artists, nil
}

func DecodeCategories(data []byte) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	for i, category := range categories {
		if strings.TrimSpace(category.ID) == "" {
			return nil, fmt.Errorf("category #%d: id is required", i+1)
		}
	}
	if categories == nil {
		categories = []catalog.Category{}
	}
	return categories, nil
}

type seedSubmission struct {
	Name        string    `yaml:"name"`
	Categories  []string  `yaml:"categories"`
	Languages   []string  `yaml:"languages"`
	Location    string    `yaml:"location"`
	FeeRange    string    `yaml:"feeRange"`
	Status      string    `yaml:"status"`
	SubmittedAt time.Time `yaml:"submittedAt"`
}

// Submissions returns the demo rows the review queue starts with.
func Submissions() ([]application.Submission, error) {
	data, err := embedded.ReadFile(submissionsFile)
	if err != nil {
		return nil, err
	}
	var rows []seedSubmission
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	out := make([]application.Submission, 0, len(rows))
	for _, row := range rows {
		status := application.ReviewStatus(row.Status)
		switch status {
		case application.ReviewPending, application.ReviewApproved, application.ReviewRejected:
		default:
			return nil, fmt.Errorf("submission %q: unknown status %q", row.Name, row.Status)
		}
		out = append(out, application.Submission{
			Name:        row.Name,
			Categories:  row.Categories,
			Languages:   row.Languages,
			Location:    row.Location,
			FeeRange:    row.FeeRange,
			Status:      status,
			SubmittedAt: row.SubmittedAt.UTC(),
		})
	}
	return out, nil
}

func read(path, fallback string) ([]byte, error) {
	if path == "" {
		return embedded.ReadFile(fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
