package seed

import (
	"context"
	"fmt"
	"folio/database"
	"folio/models"
	"log"
)

// Projects are inserted, in this order, into an empty projects table.
var Projects = []models.CreateProjectRequest{
	{
		Title:       "E-Commerce Dashboard",
		Description: "A comprehensive analytics dashboard for online retailers featuring real-time data visualization.",
		ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f",
		ProjectURL:  strPtr("https://example.com/dashboard"),
		RepoURL:     strPtr("https://github.com/example/dashboard"),
		Featured:    boolPtr(true),
	},
	{
		Title:       "AI Chat Interface",
		Description: "Modern chat application using OpenAI's GPT-4 API with streaming responses and history.",
		ImageURL:    "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
		ProjectURL:  strPtr("https://example.com/chat"),
		RepoURL:     strPtr("https://github.com/example/chat"),
		Featured:    boolPtr(true),
	},
	{
		Title:       "3D Product Configurator",
		Description: "Interactive 3D product customization tool built with Three.js and React Fiber.",
		ImageURL:    "https://images.unsplash.com/photo-1633356122544-f134324a6cee",
		ProjectURL:  strPtr("https://example.com/3d-config"),
		RepoURL:     strPtr("https://github.com/example/3d-config"),
		Featured:    boolPtr(false),
	},
}

// Run inserts Projects when the projects table is empty and reports how many
// rows it wrote. A non-empty table is left untouched.
//
// The emptiness check and the inserts are separate statements, so two
// instances starting against the same empty database can both seed.
func Run(ctx context.Context, store database.Storage) (int, error) {
	existing, err := store.ListProjects(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: list projects: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Seed: skipped existing=%d", len(existing))
		return 0, nil
	}

	inserted := 0
	for _, req := range Projects {
		if verr := models.ValidateProjectInput(req); verr != nil {
			return inserted, fmt.Errorf("seed: invalid project %q: %w", req.Title, verr)
		}
		if _, err := store.CreateProject(ctx, req); err != nil {
			return inserted, fmt.Errorf("seed: create project %q: %w", req.Title, err)
		}
		inserted++
	}

	log.Printf("Seed: inserted=%d", inserted)
	return inserted, nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
