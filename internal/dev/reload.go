package dev

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadEndpoint is the WebSocket path browsers connect to. The
// injected ReloadScript hardcodes the same path.
const ReloadEndpoint = "/_markout/reload"

// ReloadMessageType identifies a reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers over the WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

// reloadUpgrader accepts any origin. The preview server only binds to
// local addresses, and reload messages carry nothing sensitive.
var reloadUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// ReloadServer manages WebSocket connections for live reload. Writes
// happen under the lock; with a handful of local browser tabs that is
// cheaper than a writer goroutine per connection.
type ReloadServer struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewReloadServer builds a reload hub with no connected clients.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{clients: make(map[*websocket.Conn]struct{})}
}

// HandleWebSocket upgrades the connection and tracks it until the
// client disconnects. The read loop only drains; browsers never send
// anything meaningful.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := reloadUpgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	r.add(conn)
	defer r.drop(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (r *ReloadServer) add(conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[conn] = struct{}{}
}

func (r *ReloadServer) drop(conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[conn]; ok {
		delete(r.clients, conn)
		conn.Close()
	}
}

// NotifyReload sends a full page reload to all clients.
func (r *ReloadServer) NotifyReload() {
	r.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS sends a stylesheet-only refresh to all clients.
func (r *ReloadServer) NotifyCSS(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError shows the error overlay on all clients.
func (r *ReloadServer) NotifyError(errMsg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError removes the error overlay on all clients.
func (r *ReloadServer) ClearError() {
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// broadcast sends a message to every connected client, dropping any
// connection that fails to write.
func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for conn := range r.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(r.clients, conn)
		}
	}
}

// ClientCount reports how many browsers are currently connected.
func (r *ReloadServer) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close drops every connected client.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for conn := range r.clients {
		conn.Close()
		delete(r.clients, conn)
	}
}

// ReloadScript is the live reload client injected into served HTML
// pages. It reconnects with backoff, swaps stylesheets in place on css
// messages, and renders build errors as an overlay.
const ReloadScript = `
<script>
(() => {
    'use strict';

    const OVERLAY_ID = 'markout-error-overlay';
    let retryDelay = 1000;

    const handlers = {
        reload() {
            console.log('[markout] Reloading...');
            location.reload();
        },
        css() {
            console.log('[markout] Refreshing stylesheets...');
            for (const link of document.querySelectorAll('link[rel="stylesheet"]')) {
                const url = new URL(link.href);
                url.searchParams.set('_reload', Date.now());
                link.href = url.toString();
            }
        },
        error(msg) {
            console.error('[markout] Build error:', msg.error);
            showOverlay(msg.error);
        },
        clear() {
            hideOverlay();
        },
    };

    function connect() {
        const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
        const ws = new WebSocket(proto + '//' + location.host + '/_markout/reload');

        ws.onopen = () => {
            console.log('[markout] Live reload connected');
            retryDelay = 1000;
            hideOverlay();
        };

        ws.onmessage = (e) => {
            let msg;
            try { msg = JSON.parse(e.data); } catch { return; }
            const handle = handlers[msg.type];
            if (handle) handle(msg);
        };

        ws.onclose = () => {
            console.log('[markout] Connection lost, retrying in ' + retryDelay + 'ms');
            setTimeout(() => {
                retryDelay = Math.min(retryDelay * 2, 30000);
                connect();
            }, retryDelay);
        };

        ws.onerror = () => ws.close();
    }

    function showOverlay(text) {
        hideOverlay();
        const overlay = document.createElement('div');
        overlay.id = OVERLAY_ID;
        overlay.style.cssText =
            'position:fixed;inset:0;background:rgba(0,0,0,0.9);color:#fff;' +
            'font-family:monospace;font-size:14px;padding:20px;overflow:auto;z-index:999999;';

        const pre = document.createElement('pre');
        pre.style.cssText =
            'white-space:pre-wrap;word-wrap:break-word;background:#1a1a1a;' +
            'padding:20px;border-radius:8px;border:1px solid #333;max-width:800px;margin:0 auto;';
        pre.textContent = text;

        const title = document.createElement('h2');
        title.style.cssText = 'color:#ff5555;max-width:800px;margin:0 auto 20px;';
        title.textContent = 'Build failed';

        const hint = document.createElement('p');
        hint.style.cssText = 'color:#888;max-width:800px;margin:20px auto 0;';
        hint.textContent = 'Fix the error and save. The page reloads on the next successful build.';

        overlay.append(title, pre, hint);
        document.body.append(overlay);
    }

    function hideOverlay() {
        document.getElementById(OVERLAY_ID)?.remove();
    }

    document.readyState === 'loading'
        ? document.addEventListener('DOMContentLoaded', connect)
        : connect();
})();
</script>
`
