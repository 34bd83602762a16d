package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/campus-pc-advisor/config"
	"github.com/yourusername/campus-pc-advisor/internal/delivery/httpapi"
	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
	"github.com/yourusername/campus-pc-advisor/internal/domain/repository"
	"github.com/yourusername/campus-pc-advisor/internal/infrastructure/gemini"
	"github.com/yourusername/campus-pc-advisor/internal/infrastructure/parser"
	"github.com/yourusername/campus-pc-advisor/internal/infrastructure/storage"
	"github.com/yourusername/campus-pc-advisor/internal/usecase"
	"github.com/yourusername/campus-pc-advisor/pkg/logger"
)

func main() {
	initDefaultTimezone()

	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Katalog (in-memory, startupda yuklanadi)
	catalogRepo := storage.NewMemoryCatalogRepository()
	if err := loadCatalog(cfg, catalogRepo); err != nil {
		log.Fatalf("❌ Katalog yuklanmadi: %v", err)
	}
	logger.InfoLogger.Println("✅ Katalog tayyor")

	// 2. Gemini AI client
	aiRepo, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("❌ Gemini client yaratilmadi: %v", err)
	}
	defer aiRepo.Close()
	logger.InfoLogger.Println("✅ Gemini AI client tayyor (gemini-2.5-flash)")

	// 3. Evaluator
	evaluator := usecase.NewEvaluator(aiRepo)
	logger.InfoLogger.Println("✅ Evaluator tayyor")

	// 4. HTTP router
	handler := httpapi.NewHandler(evaluator, catalogRepo)
	router := httpapi.NewRouter(handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.InfoLogger.Printf("🌐 Server %s portda ishlayapti. To'xtatish uchun Ctrl+C ni bosing.", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server xatosi: %v", err)
		}
	}()

	// Signal kutish: SIGHUP katalogni qayta yuklaydi, qolganlari to'xtatadi
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sigChan {
		if sig != syscall.SIGHUP {
			break
		}
		logger.InfoLogger.Println("🔄 SIGHUP: katalog qayta yuklanmoqda...")
		if err := loadCatalog(cfg, catalogRepo); err != nil {
			logger.ErrorLogger.Printf("❌ Katalog qayta yuklanmadi, eskisi qoladi: %v", err)
			continue
		}
		logger.InfoLogger.Println("✅ Katalog yangilandi")
	}
	logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorLogger.Printf("❌ Shutdown xatosi: %v", err)
	}
	logger.InfoLogger.Println("✅ Server to'xtatildi.")
}

// loadCatalog katalogni manbadan o'qiydi: DATABASE_URL berilgan bo'lsa
// Postgres, aks holda CSV + XLSX fayllar.
func loadCatalog(cfg *config.Config, catalogRepo repository.CatalogRepository) error {
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		components, laptops, err := storage.LoadPostgresCatalog(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		logger.InfoLogger.Printf("📦 Postgres: %d komponent, %d laptop", len(components), len(laptops))
		return catalogRepo.ReplaceCatalog(components, laptops)
	}

	components, err := parser.ParseComponentsFile(cfg.ComponentsCSV)
	if err != nil {
		return err
	}

	var laptops []entity.Laptop
	if _, statErr := os.Stat(cfg.LaptopsXLSX); statErr == nil {
		if laptops, err = parser.ParseLaptopsFile(cfg.LaptopsXLSX); err != nil {
			return err
		}
	} else {
		logger.InfoLogger.Printf("⚠️ Laptop fayli topilmadi (%s), faqat desktop rejimi", cfg.LaptopsXLSX)
	}
	logger.InfoLogger.Printf("📦 Fayllar: %d komponent, %d laptop", len(components), len(laptops))
	return catalogRepo.ReplaceCatalog(components, laptops)
}

func initDefaultTimezone() {
	const tzName = "Asia/Tashkent"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 5*60*60)
}
