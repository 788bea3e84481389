package nowplaying

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"charm.land/log/v2"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Lanyard gateway opcodes.
const (
	opEvent      = 0
	opHello      = 1
	opInitialize = 2
	opHeartbeat  = 3
)

const (
	defaultHeartbeat  = 30 * time.Second
	defaultMinBackoff = time.Second
	defaultMaxBackoff = 30 * time.Second
	readLimit         = 1 << 20
)

// Options configures a Client.
type Options struct {
	URL        string
	UserID     string
	Logger     *log.Logger
	MinBackoff time.Duration
	MaxBackoff time.Duration
}

// Client keeps a presence subscription alive and publishes every update
// on Updates.
type Client struct {
	opts    Options
	logger  *log.Logger
	updates chan Status
}

// NewClient returns a client. Call Run to connect.
func NewClient(opts Options) *Client {
	if opts.MinBackoff <= 0 {
		opts.MinBackoff = defaultMinBackoff
	}
	if opts.MaxBackoff < opts.MinBackoff {
		opts.MaxBackoff = max(defaultMaxBackoff, opts.MinBackoff)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default().WithPrefix("nowplaying")
	}
	return &Client{
		opts:    opts,
		logger:  logger,
		updates: make(chan Status, 1),
	}
}

// Updates delivers the latest status. Stale values are dropped when the
// consumer falls behind.
func (c *Client) Updates() <-chan Status {
	return c.updates
}

// Run connects and reconnects with exponential backoff until ctx is done.
func (c *Client) Run(ctx context.Context) error {
	backoff := c.opts.MinBackoff
	for {
		start := time.Now()
		err := c.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if time.Since(start) > c.opts.MaxBackoff {
			backoff = c.opts.MinBackoff
		}
		c.logger.Warn("presence connection lost", "err", err, "retry_in", backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, c.opts.MaxBackoff)
	}
}

type frame struct {
	Op int             `json:"op"`
	T  string          `json:"t,omitempty"`
	D  json.RawMessage `json:"d,omitempty"`
}

type hello struct {
	HeartbeatInterval int64 `json:"heartbeat_interval"`
}

type presence struct {
	ListeningToSpotify bool `json:"listening_to_spotify"`
	Spotify            *struct {
		AlbumArtURL string `json:"album_art_url"`
		Song        string `json:"song"`
		Album       string `json:"album"`
		Artist      string `json:"artist"`
		Timestamps  struct {
			Start int64 `json:"start"`
			End   int64 `json:"end"`
		} `json:"timestamps"`
	} `json:"spotify"`
}

func (c *Client) session(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, c.opts.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.opts.URL, err)
	}
	defer conn.CloseNow() //nolint:errcheck
	conn.SetReadLimit(readLimit)

	c.logger.Debug("presence connected", "url", c.opts.URL)

	for {
		var f frame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			return fmt.Errorf("read frame: %w", err)
		}

		switch f.Op {
		case opHello:
			var h hello
			_ = json.Unmarshal(f.D, &h)
			interval := time.Duration(h.HeartbeatInterval) * time.Millisecond
			if interval <= 0 {
				interval = defaultHeartbeat
			}
			sub := map[string]any{
				"op": opInitialize,
				"d":  map[string]string{"subscribe_to_id": c.opts.UserID},
			}
			if err := wsjson.Write(ctx, conn, sub); err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}
			go c.heartbeat(ctx, conn, interval)

		case opEvent:
			status, err := parsePresence(f.D)
			if err != nil {
				c.logger.Warn("bad presence payload", "type", f.T, "err", err)
				continue
			}
			c.publish(status)
		}
	}
}

func (c *Client) heartbeat(ctx context.Context, conn *websocket.Conn, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := wsjson.Write(ctx, conn, map[string]int{"op": opHeartbeat}); err != nil {
				if !errors.Is(err, context.Canceled) {
					c.logger.Debug("heartbeat failed", "err", err)
				}
				return
			}
		}
	}
}

func (c *Client) publish(s Status) {
	select {
	case <-c.updates:
	default:
	}
	c.updates <- s
}

func parsePresence(data json.RawMessage) (Status, error) {
	var p presence
	if err := json.Unmarshal(data, &p); err != nil {
		return Status{}, err
	}
	if !p.ListeningToSpotify || p.Spotify == nil {
		return Status{}, nil
	}
	return Status{
		Listening: true,
		Track: Track{
			Song:        p.Spotify.Song,
			Album:       p.Spotify.Album,
			Artist:      p.Spotify.Artist,
			AlbumArtURL: p.Spotify.AlbumArtURL,
			Start:       time.UnixMilli(p.Spotify.Timestamps.Start),
			End:         time.UnixMilli(p.Spotify.Timestamps.End),
		},
	}, nil
}
