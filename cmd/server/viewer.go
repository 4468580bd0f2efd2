package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"

	"github.com/coder/websocket"
	mandel "github.com/marben/mandelthing"
)

// command is one JSON message from the viewer page.
type command struct {
	Op       string `json:"op"` // plot, zoom, reset, view
	MaxDepth int    `json:"maxDepth,omitempty"`
	Left     int    `json:"left,omitempty"`
	Top      int    `json:"top,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Name     string `json:"name,omitempty"` // landmark name for op "view"
}

// errorReply carries a user-visible message back to the page. The page
// keeps showing the previous frame.
type errorReply struct {
	Error string `json:"error"`
}

type renderResult struct {
	img *image.RGBA
	err error
}

// viewerHandler upgrades /ws requests and runs one viewer session per
// connection.
func viewerHandler(defaults mandel.RenderConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("viewer connected: %s", r.RemoteAddr)
		if err := serveViewer(r.Context(), c, defaults); err != nil {
			log.Printf("viewer %s: %v", r.RemoteAddr, err)
			return
		}
		log.Printf("viewer disconnected: %s", r.RemoteAddr)
	}
}

// serveViewer runs one viewer connection: JSON commands in, PNG frames out.
// Renders run in their own goroutine so the next command can arrive while
// one is in flight; that command cancels the render and waits for it to
// unwind before touching the session, keeping to the render-then-mutate
// discipline the session requires.
func serveViewer(ctx context.Context, c *websocket.Conn, defaults mandel.RenderConfig) error {
	sess, err := mandel.NewSession(defaults)
	if err != nil {
		return err
	}

	cmds := make(chan command)
	readErr := make(chan error, 1)
	go func() {
		for {
			_, data, err := c.Read(ctx)
			if err != nil {
				readErr <- err
				return
			}
			var cmd command
			if err := json.Unmarshal(data, &cmd); err != nil {
				readErr <- fmt.Errorf("bad command: %w", err)
				return
			}
			select {
			case cmds <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		renderCancel context.CancelFunc
		renderDone   chan renderResult // nil while no render is in flight
	)
	startRender := func() {
		rctx, cancel := context.WithCancel(ctx)
		renderCancel = cancel
		done := make(chan renderResult, 1)
		renderDone = done
		go func() {
			img, err := sess.Plot(rctx)
			done <- renderResult{img: img, err: err}
		}()
	}
	defer func() {
		if renderCancel != nil {
			renderCancel()
		}
	}()

	// First frame without waiting for a command.
	startRender()

	for {
		select {
		case err := <-readErr:
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			return err

		case cmd := <-cmds:
			if renderDone != nil {
				renderCancel()
				<-renderDone // abandoned render unwinds before any mutation
				renderDone = nil
			}
			render, err := applyCommand(sess, cmd)
			if err != nil {
				if werr := writeError(ctx, c, err); werr != nil {
					return werr
				}
				continue
			}
			if render {
				startRender()
			}

		case res := <-renderDone:
			renderDone = nil
			renderCancel = nil
			if res.err != nil {
				if errors.Is(res.err, context.Canceled) {
					continue
				}
				if werr := writeError(ctx, c, res.err); werr != nil {
					return werr
				}
				continue
			}
			if err := writeFrame(ctx, c, res.img); err != nil {
				return err
			}
		}
	}
}

// applyCommand mutates the session according to cmd and reports whether a
// new render should start. A returned error is a user-visible message; the
// session is untouched when one is returned.
func applyCommand(sess *mandel.Session, cmd command) (render bool, err error) {
	switch cmd.Op {
	case "plot":
		if err := sess.SetMaxDepth(cmd.MaxDepth); err != nil {
			return false, errors.New("Depth must be >= 2.")
		}
		return true, nil

	case "zoom":
		sel := mandel.ZoomSelection{Left: cmd.Left, Top: cmd.Top, Width: cmd.Width, Height: cmd.Height}
		if err := sess.Zoom(sel); err != nil {
			// A bare click arrives as a zero-area selection: no zoom.
			return false, nil
		}
		return true, nil

	case "reset":
		sess.Reset()
		return true, nil

	case "view":
		vp, ok := mandel.LandmarkByName(cmd.Name)
		if !ok {
			return false, fmt.Errorf("unknown view %q", cmd.Name)
		}
		if err := sess.SetViewport(vp); err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown op %q", cmd.Op)
	}
}

func writeFrame(ctx context.Context, c *websocket.Conn, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return c.Write(ctx, websocket.MessageBinary, buf.Bytes())
}

func writeError(ctx context.Context, c *websocket.Conn, err error) error {
	data, merr := json.Marshal(errorReply{Error: err.Error()})
	if merr != nil {
		return merr
	}
	return c.Write(ctx, websocket.MessageText, data)
}
