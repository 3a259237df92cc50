package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/database"
	dbpostgres "career-guide/internal/database/postgres"
	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/matching"
	"career-guide/internal/infrastructure/cache"
	"career-guide/internal/infrastructure/events"
	"career-guide/internal/infrastructure/llm"
	"career-guide/internal/infrastructure/marketdata"
	"career-guide/internal/infrastructure/memory"
	"career-guide/internal/usecase"
	"career-guide/internal/ws"
)

type Container struct {
	Config  config.Config
	Catalog catalog.Catalog

	DB     database.DB
	Cache  *cache.Redis
	Gemini *llm.GeminiClient
	AMQP   *events.AMQPPublisher
	Hub    *ws.Hub

	Extractor matching.Extractor
	Store     *memory.StudentStore

	Analysis  *usecase.Analysis
	Students  *usecase.Student
	Market    *usecase.Market
	WSHandler *ws.Handler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c := &Container{Config: cfg}

	src, err := c.marketDataSource(ctx, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	cat, err := src.Load(ctx)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("load market data from %s: %w", src.Name(), err)
	}
	c.Catalog = cat

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	extractor, err := c.buildExtractor(logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Extractor = usecase.NewCachedExtractor(extractor, c.jsonCache(), cfg.Redis.TTL, logger)

	c.Hub = ws.NewHub(logger)
	go c.Hub.Run()

	publishers := usecase.MultiPublisher{ws.NewPublisher(c.Hub)}
	if cfg.RabbitMQ.URL != "" {
		pub, err := events.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			logger.Printf("events status=disabled broker=rabbitmq err=%v", err)
		} else {
			c.AMQP = pub
			publishers = append(publishers, pub)
		}
	}

	c.Store = memory.NewStudentStore()
	c.Analysis = usecase.NewAnalysisUsecase(cat, c.Extractor, matching.RandomChooser{}, c.Store, publishers, logger)
	c.Students = usecase.NewStudentUsecase(c.Store, publishers, logger)
	c.Market = usecase.NewMarketUsecase(cat)
	c.WSHandler = ws.NewHandler(c.Hub, cfg.App.CORSAllowOrigins, func(id string) bool {
		_, err := c.Store.GetByID(context.Background(), id)
		return err == nil
	}, logger)

	logger.Printf("container status=ready source=%s extractor=%s skills=%d careers=%d",
		src.Name(), c.Extractor.Name(), len(cat.Market.RequiredSkills), len(cat.Market.CareerPaths))
	return c, nil
}

func (c *Container) marketDataSource(ctx context.Context, logger *log.Logger) (marketdata.Source, error) {
	switch c.Config.MarketData.Source {
	case config.MarketDataPostgres:
		db, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		c.DB = db
		return marketdata.NewPostgresSource(db, logger), nil
	default:
		return marketdata.NewJSONSource(c.Config.MarketData.Path, logger), nil
	}
}

// buildExtractor creates the Gemini client with a background context: it
// outlives startup.
func (c *Container) buildExtractor(logger *log.Logger) (matching.Extractor, error) {
	skills := c.Catalog.Market.RequiredSkills
	keyword := matching.NewKeywordExtractor(skills)
	ec := c.Config.Extractor

	switch ec.Mode {
	case config.ExtractorKeyword:
		return keyword, nil
	case config.ExtractorLLM, config.ExtractorAuto:
		if ec.GeminiAPIKey == "" {
			if ec.Mode == config.ExtractorLLM {
				return nil, errors.New("EXTRACTOR=llm requires GEMINI_API_KEY")
			}
			return keyword, nil
		}
		client, err := llm.NewGeminiClient(context.Background(), ec.GeminiAPIKey, ec.GeminiModel)
		if err != nil {
			if ec.Mode == config.ExtractorLLM {
				return nil, err
			}
			logger.Printf("extractor status=fallback mode=auto err=%v", err)
			return keyword, nil
		}
		c.Gemini = client
		return llm.NewSkillExtractor(client, skills, logger), nil
	default:
		return keyword, nil
	}
}

// jsonCache returns nil when Redis is not usable so the extractor is used
// directly.
func (c *Container) jsonCache() usecase.JSONCache {
	if !c.Cache.Available() {
		return nil
	}
	return c.Cache
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	c.Hub.Stop()
	if c.AMQP != nil {
		errs = append(errs, c.AMQP.Close())
	}
	if c.Gemini != nil {
		errs = append(errs, c.Gemini.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
