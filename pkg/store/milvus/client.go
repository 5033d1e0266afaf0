package milvus

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"
	"github.com/rs/zerolog"
)

// Client manages Milvus connections
type Client struct {
	conn   client.Client
	addr   string
	nlist  int
	nprobe int
	logger zerolog.Logger
}

// Config holds Milvus connection configuration
type Config struct {
	Address  string `mapstructure:"address"`  // e.g. "localhost:19530"
	Username string `mapstructure:"username"` // optional
	Password string `mapstructure:"password"` // optional
	NList    int    `mapstructure:"nlist"`    // IVF clusters
	NProbe   int    `mapstructure:"nprobe"`   // clusters visited per search
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Address: "localhost:19530",
		NList:   128,
		NProbe:  16,
	}
}

// NewClient creates a new Milvus client
func NewClient(ctx context.Context, cfg Config, logger zerolog.Logger) (*Client, error) {
	ccfg := client.Config{Address: cfg.Address}
	if cfg.Username != "" && cfg.Password != "" {
		ccfg.Username = cfg.Username
		ccfg.Password = cfg.Password
	}

	conn, err := client.NewClient(ctx, ccfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to milvus: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.NList <= 0 {
		cfg.NList = defaults.NList
	}
	if cfg.NProbe <= 0 {
		cfg.NProbe = defaults.NProbe
	}

	logger.Debug().Str("address", cfg.Address).Msg("Connected to Milvus")
	return &Client{
		conn:   conn,
		addr:   cfg.Address,
		nlist:  cfg.NList,
		nprobe: cfg.NProbe,
		logger: logger,
	}, nil
}

// Close closes the Milvus connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// HasCollection checks if a collection exists
func (c *Client) HasCollection(ctx context.Context, name string) (bool, error) {
	return c.conn.HasCollection(ctx, name)
}

// CreateIndex creates an IVF_FLAT index on the embedding field.
// Feature vectors are not normalized, so distances are L2.
func (c *Client) CreateIndex(ctx context.Context, collectionName, fieldName string) error {
	idx, err := entity.NewIndexIvfFlat(entity.L2, c.nlist)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return c.conn.CreateIndex(ctx, collectionName, fieldName, idx, false)
}

// LoadCollection loads a collection into memory
func (c *Client) LoadCollection(ctx context.Context, collectionName string) error {
	return c.conn.LoadCollection(ctx, collectionName, false)
}

// DropCollection drops a collection
func (c *Client) DropCollection(ctx context.Context, collectionName string) error {
	return c.conn.DropCollection(ctx, collectionName)
}

// Flush flushes the collection to ensure data persistence
func (c *Client) Flush(ctx context.Context, collectionName string) error {
	return c.conn.Flush(ctx, collectionName, false)
}
