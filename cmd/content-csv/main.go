package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fjordlearn/fjordlearn-backend/internal/config"
	"github.com/fjordlearn/fjordlearn-backend/internal/csvio"
	"github.com/fjordlearn/fjordlearn-backend/internal/database"
	"github.com/fjordlearn/fjordlearn-backend/internal/logger"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// content-csv moves library content between the database and CSV files:
//
//	content-csv -entity verbs -file verbs.csv import -update
//	content-csv -entity glossary -file glossary.csv export
func main() {
	var (
		entity string
		file   string
		update bool
	)
	flag.StringVar(&entity, "entity", "", "Entity: verbs, expressions, glossary, readings")
	flag.StringVar(&file, "file", "", "CSV file path")
	flag.BoolVar(&update, "update", false, "Overwrite existing rows on import")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || entity == "" || file == "" {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg := config.Load()
	zlog := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg, zlog)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	switch command {
	case "import":
		f, err := os.Open(file)
		if err != nil {
			log.Fatalf("Open %s: %v", file, err)
		}
		defer f.Close()

		stats, err := runImport(ctx, pool, entity, f, update)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		fmt.Printf("Imported %s: created=%d updated=%d skipped=%d\n",
			entity, stats.Created, stats.Updated, stats.Skipped)

	case "export":
		f, err := os.Create(file)
		if err != nil {
			log.Fatalf("Create %s: %v", file, err)
		}
		defer f.Close()

		count, err := runExport(ctx, pool, entity, f)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Exported %d %s to %s\n", count, entity, file)

	default:
		printUsage()
		os.Exit(1)
	}
}

func runImport(ctx context.Context, pool *pgxpool.Pool, entity string, f *os.File, update bool) (csvio.ImportStats, error) {
	var stats csvio.ImportStats

	switch entity {
	case "verbs":
		repo := repository.NewVerbRepository(pool)
		entries, skipped, err := csvio.ReadVerbs(f)
		if err != nil {
			return stats, err
		}
		stats.Skipped = skipped
		for i := range entries {
			created, err := repo.CreateIfAbsent(ctx, &entries[i])
			if err != nil {
				return stats, fmt.Errorf("verb %q: %w", entries[i].Verb, err)
			}
			switch {
			case created:
				stats.Created++
			case update:
				if err := repo.UpdateByKey(ctx, &entries[i]); err != nil {
					return stats, fmt.Errorf("verb %q: %w", entries[i].Verb, err)
				}
				stats.Updated++
			default:
				stats.Skipped++
			}
		}

	case "expressions":
		repo := repository.NewExpressionRepository(pool)
		expressions, skipped, err := csvio.ReadExpressions(f)
		if err != nil {
			return stats, err
		}
		stats.Skipped = skipped
		for i := range expressions {
			created, err := repo.CreateIfAbsent(ctx, &expressions[i])
			if err != nil {
				return stats, fmt.Errorf("expression %q: %w", expressions[i].Phrase, err)
			}
			switch {
			case created:
				stats.Created++
			case update:
				if err := repo.UpdateByKey(ctx, &expressions[i]); err != nil {
					return stats, fmt.Errorf("expression %q: %w", expressions[i].Phrase, err)
				}
				stats.Updated++
			default:
				stats.Skipped++
			}
		}

	case "glossary":
		repo := repository.NewGlossaryRepository(pool)
		terms, skipped, err := csvio.ReadGlossary(f)
		if err != nil {
			return stats, err
		}
		stats.Skipped = skipped
		for i := range terms {
			created, err := repo.CreateIfAbsent(ctx, &terms[i])
			if err != nil {
				return stats, fmt.Errorf("term %q: %w", terms[i].Term, err)
			}
			switch {
			case created:
				stats.Created++
			case update:
				if err := repo.UpdateByKey(ctx, &terms[i]); err != nil {
					return stats, fmt.Errorf("term %q: %w", terms[i].Term, err)
				}
				stats.Updated++
			default:
				stats.Skipped++
			}
		}

	case "readings":
		repo := repository.NewReadingRepository(pool)
		readings, skipped, err := csvio.ReadReadings(f)
		if err != nil {
			return stats, err
		}
		stats.Skipped = skipped
		for i := range readings {
			created, err := repo.CreateIfAbsent(ctx, &readings[i])
			if err != nil {
				return stats, fmt.Errorf("reading %q: %w", readings[i].Slug, err)
			}
			switch {
			case created:
				stats.Created++
			case update:
				if err := repo.UpdateBySlug(ctx, &readings[i]); err != nil {
					return stats, fmt.Errorf("reading %q: %w", readings[i].Slug, err)
				}
				stats.Updated++
			default:
				stats.Skipped++
			}
		}

	default:
		return stats, fmt.Errorf("unknown entity %q", entity)
	}

	return stats, nil
}

func runExport(ctx context.Context, pool *pgxpool.Pool, entity string, f *os.File) (int, error) {
	switch entity {
	case "verbs":
		entries, err := repository.NewVerbRepository(pool).List(ctx, "")
		if err != nil {
			return 0, err
		}
		return len(entries), csvio.WriteVerbs(f, entries)

	case "expressions":
		expressions, err := repository.NewExpressionRepository(pool).List(ctx, "")
		if err != nil {
			return 0, err
		}
		return len(expressions), csvio.WriteExpressions(f, expressions)

	case "glossary":
		terms, err := repository.NewGlossaryRepository(pool).ListAll(ctx)
		if err != nil {
			return 0, err
		}
		return len(terms), csvio.WriteGlossary(f, terms)

	case "readings":
		readings, err := repository.NewReadingRepository(pool).ListAll(ctx)
		if err != nil {
			return 0, err
		}
		return len(readings), csvio.WriteReadings(f, readings)

	default:
		return 0, fmt.Errorf("unknown entity %q", entity)
	}
}

func printUsage() {
	fmt.Println("Usage: content-csv -entity <verbs|expressions|glossary|readings> -file <path> [-update] <import|export>")
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
