package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/razoraze123/flux/internal/client"
	clientStore "github.com/razoraze123/flux/internal/client/store"
	"github.com/razoraze123/flux/internal/config"
	"github.com/razoraze123/flux/internal/debt"
	debtStore "github.com/razoraze123/flux/internal/debt/store"
	"github.com/razoraze123/flux/internal/finance"
	financeStore "github.com/razoraze123/flux/internal/finance/store"
	fluxHttp "github.com/razoraze123/flux/internal/http"
	clientHandler "github.com/razoraze123/flux/internal/http/client"
	debtHandler "github.com/razoraze123/flux/internal/http/debt"
	financeHandler "github.com/razoraze123/flux/internal/http/finance"
	invoiceHandler "github.com/razoraze123/flux/internal/http/invoice"
	recurringHandler "github.com/razoraze123/flux/internal/http/recurring"
	"github.com/razoraze123/flux/internal/invoice"
	invoiceStore "github.com/razoraze123/flux/internal/invoice/store"
	"github.com/razoraze123/flux/internal/memory"
	"github.com/razoraze123/flux/internal/recurring"
	recurringStore "github.com/razoraze123/flux/internal/recurring/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db := memory.New(
		memory.WithSeed(memory.DefaultSeed()),
		memory.WithLatency(cfg.Mock.Latency),
	)

	var (
		clientService    = client.NewService(clientStore.New(db))
		financeService   = finance.NewService(financeStore.New(db))
		invoiceService   = invoice.NewService(invoiceStore.New(db))
		debtService      = debt.NewService(debtStore.New(db))
		recurringService = recurring.NewService(recurringStore.New(db))
	)

	var (
		clientsH   = clientHandler.NewHandler(clientService)
		financeH   = financeHandler.NewHandler(financeService)
		invoicesH  = invoiceHandler.NewHandler(invoiceService)
		debtsH     = debtHandler.NewHandler(debtService)
		recurringH = recurringHandler.NewHandler(recurringService)
	)

	router := fluxHttp.New(clientsH, financeH, invoicesH, debtsH, recurringH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
