// mandelserver serves the interactive Mandelbrot viewer: a static browser
// page plus a websocket endpoint per viewer. The browser collects zoom-box
// drags and button presses and sends them as commands; the server renders
// and streams back PNG frames.

package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	mandel "github.com/marben/mandelthing"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	settings := flag.String("settings", mandel.SettingsFile, "properties file with render defaults")
	flag.Parse()

	defaults := mandel.LoadSettings(*settings)
	log.Printf("render defaults: %dx%d, max depth %d", defaults.Width, defaults.Height, defaults.MaxDepth)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", viewerHandler(defaults))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
