package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/radomlabs/radom-crm/internal/infra/database"
	"github.com/radomlabs/radom-crm/internal/infra/http/handlers"
	"github.com/radomlabs/radom-crm/internal/infra/http/middleware"
	"github.com/radomlabs/radom-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(getenv("DB_FILE", "data/crm.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.InitSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositories
	contactRepo := database.NewContactRepository(db)
	noteRepo := database.NewNoteRepository(db)

	// 2. UseCases
	mapper := usecase.NewColumnMapper(usecase.ParseHeaderSynonyms(os.Getenv("IMPORT_HEADER_SYNONYMS")))
	importUC := usecase.NewImportContactsUseCase(contactRepo, mapper, os.Getenv("BACKUP_FILE"))
	createUC := usecase.NewCreateContactUseCase(contactRepo, noteRepo)
	updateUC := usecase.NewUpdateContactUseCase(contactRepo)
	statusUC := usecase.NewSetStatusUseCase(contactRepo)
	addNoteUC := usecase.NewAddNoteUseCase(contactRepo, noteRepo)
	exportUC := usecase.NewExportContactsUseCase(contactRepo)

	// 3. Handlers
	contactHandler := handlers.NewContactHandler(createUC, updateUC, statusUC, contactRepo)
	noteHandler := handlers.NewNoteHandler(addNoteUC, noteRepo)
	importHandler := handlers.NewImportHandler(importUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	healthHandler := handlers.NewHealthHandler(db)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{getenv("CORS_ORIGIN", "http://localhost:5173"), "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/contacts", contactHandler.Create)
	r.Get("/contacts", contactHandler.List)
	r.Get("/contacts/{id}", contactHandler.Get)
	r.Put("/contacts/{id}", contactHandler.Update)
	r.Put("/contacts/{id}/status", contactHandler.SetStatus)
	r.Delete("/contacts/{id}", contactHandler.Archive)

	r.Post("/contacts/{id}/notes", noteHandler.Add)
	r.Get("/contacts/{id}/notes", noteHandler.List)
	r.Delete("/notes/{id}", noteHandler.Delete)

	r.Post("/import", importHandler.Handle)
	r.Get("/export", exportHandler.Handle)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := getenv("ADDR", ":8080")
	log.Printf("CRM API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
