package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/engine"
	"github.com/kojjob/TravelNurse-sub001/internal/handler"
	"github.com/kojjob/TravelNurse-sub001/internal/taxconfig"
)

func main() {
	godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	table := taxconfig.Default2024()
	if path := os.Getenv("TAX_TABLE_FILE"); path != "" {
		loaded, err := taxconfig.LoadFromFile(path)
		if err != nil {
			log.Error("failed to load tax table, aborting", "path", path, "error", err)
			os.Exit(1)
		}
		table = loaded
	}
	if err := table.Validate(); err != nil {
		log.Error("tax table invalid, aborting", "error", err)
		os.Exit(1)
	}

	scoring := compliance.ScoringPolicy{
		PartialCredit: os.Getenv("PARTIAL_CREDIT") == "true",
	}

	eng := engine.New(table, scoring)

	mux := http.NewServeMux()
	mux.Handle("/v1/calculate", &handler.Calculation{Engine: eng, Log: log})

	log.Info("calculation engine starting", "port", port, "tax_year", table.TaxYear)
	if err := fasthttp.ListenAndServe(":"+port, fasthttpadaptor.NewFastHTTPHandler(mux)); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
