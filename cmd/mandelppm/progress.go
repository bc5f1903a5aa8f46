package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// progressServer pushes render progress frames to connected browsers over a
// websocket. It is a display side channel only; rendering never waits on it.
type progressServer struct {
	m     sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// serveProgress starts an http server on addr serving the progress page on /
// and the websocket endpoint on /ws. The server lives for the rest of the
// process; there is nothing to tear down once the render is written.
func serveProgress(addr string) *progressServer {
	ps := &progressServer{conns: make(map[*websocket.Conn]struct{})}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ps.websocketHandler)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, progressPage)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Fatalf("progress server: %v", err)
		}
	}()

	log.Printf("progress page on http://localhost%s", addr)
	return ps
}

// websocketHandler upgrades the connection and keeps it registered until the
// client goes away. We never expect data from the client; CloseRead keeps
// control frames serviced.
func (ps *progressServer) websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}

	ps.m.Lock()
	ps.conns[c] = struct{}{}
	ps.m.Unlock()

	ctx := c.CloseRead(r.Context())
	<-ctx.Done()

	ps.m.Lock()
	delete(ps.conns, c)
	ps.m.Unlock()
	c.CloseNow()
}

// publish broadcasts a progress frame to every connected client. Slow or
// dead clients are dropped rather than awaited.
func (ps *progressServer) publish(done, total int) {
	frame := fmt.Appendf(nil, `{"done":%d,"total":%d}`, done, total)

	ps.m.Lock()
	defer ps.m.Unlock()
	for c := range ps.conns {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err := c.Write(ctx, websocket.MessageText, frame)
		cancel()
		if err != nil {
			delete(ps.conns, c)
			c.CloseNow()
		}
	}
}

const progressPage = `<!DOCTYPE html>
<html>
<head><title>mandelppm progress</title></head>
<body>
<h3>mandelppm render progress</h3>
<progress id="bar" value="0" max="1"></progress> <span id="pct">0%</span>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
	const p = JSON.parse(ev.data);
	document.getElementById("bar").value = p.done / p.total;
	document.getElementById("pct").textContent = (100 * p.done / p.total).toFixed(1) + "%";
};
</script>
</body>
</html>
`
