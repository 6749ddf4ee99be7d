package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// reloadMessage is pushed to browsers over the live-reload socket.
type reloadMessage struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// Reloader tracks live-reload WebSocket clients and broadcasts change
// notifications to them.
type Reloader struct {
	log      *slog.Logger
	metrics  *metrics
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

func newReloader(log *slog.Logger, m *metrics) *Reloader {
	return &Reloader{
		log:     log,
		metrics: m,
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true // dev server only
			},
		},
	}
}

// HandleWebSocket upgrades the connection and holds it open until the
// browser goes away.
func (r *Reloader) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.log.Warn("reload upgrade failed", "error", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.mu.Unlock()
	r.metrics.reloadClients.Inc()
	r.log.Debug("reload client connected", "remote", conn.RemoteAddr())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	r.metrics.reloadClients.Dec()
	conn.Close()
}

// NotifyChanged broadcasts a reload for a changed source path.
func (r *Reloader) NotifyChanged(path string) {
	r.broadcast(reloadMessage{Type: "reload", Path: path})
}

func (r *Reloader) broadcast(msg reloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	// Nothing connected, nothing delivered.
	if len(clients) == 0 {
		return
	}

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			r.mu.Lock()
			delete(r.clients, client)
			r.mu.Unlock()
			r.metrics.reloadClients.Dec()
			client.Close()
		}
	}
	r.metrics.reloadsSent.Inc()
}

// ClientCount returns the number of connected clients.
func (r *Reloader) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close drops all client connections.
func (r *Reloader) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for client := range r.clients {
		client.Close()
		delete(r.clients, client)
	}
}

// reloadScript is injected into served pages. It reconnects with
// backoff so a server restart picks clients back up.
const reloadScript = `<script>
(function() {
    'use strict';
    var delay = 1000;
    function connect() {
        var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(proto + '//' + location.host + '/_weft/reload');
        ws.onopen = function() { delay = 1000; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            if (msg.type === 'reload') { location.reload(); }
        };
        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
        ws.onerror = function() { ws.close(); };
    }
    connect();
})();
</script>`
