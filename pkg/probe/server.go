package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/harshx-2005/linkup-sub001/internal/config"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	order    []string
	probes   map[string]Probe
	upgrader websocket.Upgrader
}

func NewHandler(probes ...Probe) *Handler {
	h := &Handler{
		order:  make([]string, 0, len(probes)),
		probes: make(map[string]Probe, len(probes)),
	}
	for _, p := range probes {
		h.order = append(h.order, p.Name())
		h.probes[p.Name()] = p
	}
	return h
}

func NewProbeHandler(cfg *config.Catalog) (*Handler, error) {
	probes, err := BuildFromCatalog(cfg.Probes)
	if err != nil {
		return nil, err
	}
	return NewHandler(probes...), nil
}

func (h *Handler) ordered() []Probe {
	probes := make([]Probe, 0, len(h.order))
	for _, name := range h.order {
		probes = append(probes, h.probes[name])
	}
	return probes
}

func (h *Handler) Router() *mux.Router {
	m := mux.NewRouter()
	m.Path("/status").Methods(http.MethodGet).HandlerFunc(h.HandleStatus)
	m.Path("/v1/probe/{name}").Methods(http.MethodGet).HandlerFunc(h.HandleProbe)
	m.Path("/v1/stream").Methods(http.MethodGet).HandlerFunc(h.HandleStream)
	return m
}

// HandleStatus runs every probe in declaration order and answers 503 unless
// all of them are ok.
func (h *Handler) HandleStatus(res http.ResponseWriter, req *http.Request) {
	response := StatusResponse{
		Probes: make(map[string]*ProbeStatus, len(h.probes)),
	}

	success := true
	Run(req.Context(), h.ordered(), func(p Probe, r *Result) {
		status := statusFromResult(p.Name(), r)
		response.Probes[status.Name] = status
		success = success && status.OK
		if !status.OK {
			log.WithFields(log.Fields{"kind": "probe", "name": p.Name(), "status": r.StatusCode}).Warn("probe not ok")
		}
	})

	if len(response.Probes) < len(h.probes) {
		success = false
	}

	writeJSON(res, success, &response)
}

func (h *Handler) HandleProbe(res http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]
	p, ok := h.probes[name]
	if !ok {
		http.Error(res, "probe "+name+" is not configured", http.StatusNotFound)
		return
	}

	status := statusFromResult(name, p.Exec(req.Context()))
	writeJSON(res, status.OK, status)
}

// HandleStream upgrades to a websocket and sends one redacted Result per
// probe, in declaration order, followed by a normal close.
func (h *Handler) HandleStream(res http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(res, req, nil)
	if err != nil {
		log.WithError(err).Warn("failed to upgrade connection")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	// handle client disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	Run(ctx, h.ordered(), func(p Probe, r *Result) {
		if err := conn.WriteJSON(r.Redacted()); err != nil {
			log.WithFields(log.Fields{"kind": "probe", "name": p.Name()}).WithError(err).Warn("failed to stream result")
			cancel()
		}
	})

	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(time.Second),
	)
}

func writeJSON(res http.ResponseWriter, ok bool, body interface{}) {
	res.Header().Set("Content-Type", "application/json")
	if !ok {
		res.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(res).Encode(body)
}

// RunProbeServer serves the handler on listenAddr until ctx is done.
func RunProbeServer(ctx context.Context, ph *Handler, listenAddr string) error {
	server := http.Server{
		Addr:    listenAddr,
		Handler: ph.Router(),
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down probe server")
		_ = server.Shutdown(context.Background())
	}()

	log.Infof("probe server listens on %s", listenAddr)
	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}

	return nil
}
