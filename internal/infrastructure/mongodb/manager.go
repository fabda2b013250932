package mongodb

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Manager owns the MongoDB connection lifecycle. It connects at Start, then
// keeps a background watchdog that pings on a fixed interval and logs state
// transitions; the driver itself re-establishes sockets, so the watchdog never
// gives up and never grows its delay.
type Manager struct {
	uri          string
	dbName       string
	pingInterval time.Duration
	pingTimeout  time.Duration
	logger       *logrus.Logger

	client *mongo.Client
	stop   chan struct{}
	done   chan struct{}
}

func NewManager(uri, dbName string, pingInterval, pingTimeout time.Duration, logger *logrus.Logger) *Manager {
	return &Manager{
		uri:          uri,
		dbName:       dbName,
		pingInterval: pingInterval,
		pingTimeout:  pingTimeout,
		logger:       logger,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start creates the client and attempts an initial ping. A failed initial ping
// is logged but not fatal; the watchdog keeps retrying every interval and the
// server starts serving regardless, surfacing storage errors per request.
func (m *Manager) Start(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return err
	}
	m.client = client

	pingCtx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		m.logger.WithError(err).Warn("mongodb not reachable yet, retrying in background")
	} else {
		m.logger.Info("mongodb connected")
	}

	go m.watch()
	return nil
}

// Stop shuts down the watchdog and disconnects the client.
func (m *Manager) Stop(ctx context.Context) error {
	close(m.stop)
	<-m.done
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

// Client returns the underlying driver client.
func (m *Manager) Client() *mongo.Client { return m.client }

// Database returns a handle on the configured database.
func (m *Manager) Database() *mongo.Database { return m.client.Database(m.dbName) }

func (m *Manager) watch() {
	defer close(m.done)
	ticker := time.NewTicker(m.pingInterval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), m.pingTimeout)
			err := m.client.Ping(ctx, readpref.Primary())
			cancel()
			if err != nil {
				if healthy {
					m.logger.WithError(err).Error("mongodb disconnected, retrying")
				}
				healthy = false
				continue
			}
			if !healthy {
				m.logger.Info("mongodb reconnected")
			}
			healthy = true
		}
	}
}
