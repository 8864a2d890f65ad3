package simulator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voltbite/internal/pkg/config"
	"voltbite/internal/usecase/readmodel"
)

// Per-tick increments of the simulated charger hardware. SoC grows by the
// configured rate of charge; price and power accumulate at fixed rates.
const (
	powerPerTick = 10.0
	pricePerTick = 1.0
)

// ChargeRecorder is the slice of the charging engine the simulator feeds.
type ChargeRecorder interface {
	RecordChargeUpdate(ctx context.Context, chargerID int64, upd readmodel.ChargingUpdate) error
}

// Params configure one simulated charging run.
type Params struct {
	StartSoc     float64
	TargetSoc    float64
	RateOfCharge float64
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Simulator drives fake charger hardware: one goroutine per started charger
// pushes progressive telemetry through the same path real chargers use.
type Simulator struct {
	recorder ChargeRecorder
	tick     time.Duration

	mu   sync.Mutex
	runs map[int64]*run
}

func New(recorder ChargeRecorder, cfg config.Config) *Simulator {
	return &Simulator{
		recorder: recorder,
		tick:     cfg.Coordination.ChargeTickInterval,
		runs:     make(map[int64]*run),
	}
}

// Start begins a charging run on the charger. A run already in progress is
// replaced; its loop observes cancellation and exits.
func (s *Simulator) Start(chargerID int64, p Params) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &run{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	if old, ok := s.runs[chargerID]; ok {
		old.cancel()
	}
	s.runs[chargerID] = r
	s.mu.Unlock()

	go s.loop(ctx, chargerID, p, r)
}

// Stop cancels the charger's run, if any, and waits for the loop to exit.
func (s *Simulator) Stop(chargerID int64) {
	s.mu.Lock()
	r, ok := s.runs[chargerID]
	if ok {
		delete(s.runs, chargerID)
	}
	s.mu.Unlock()

	if ok {
		r.cancel()
		<-r.done
	}
}

// Running reports whether a simulated run is active on the charger.
func (s *Simulator) Running(chargerID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.runs[chargerID]
	return ok
}

// StopAll cancels every run; used on shutdown.
func (s *Simulator) StopAll() {
	s.mu.Lock()
	runs := s.runs
	s.runs = make(map[int64]*run)
	s.mu.Unlock()

	for _, r := range runs {
		r.cancel()
		<-r.done
	}
}

func (s *Simulator) loop(ctx context.Context, chargerID int64, p Params, r *run) {
	defer close(r.done)
	defer s.release(chargerID, r)

	soc := p.StartSoc
	var power, price float64

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for soc < p.TargetSoc {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		soc += p.RateOfCharge
		if soc > p.TargetSoc {
			soc = p.TargetSoc
		}
		power += powerPerTick
		price += pricePerTick

		err := s.recorder.RecordChargeUpdate(ctx, chargerID, readmodel.ChargingUpdate{
			CurrentSoc:              soc,
			CumulativePriceOfCharge: price,
			CumulativePower:         power,
		})
		if err != nil {
			// A rejected update means the reservation ended under us; the
			// run winds down without taking the process with it.
			slog.Warn("charge update rejected, stopping simulated run",
				"charger_id", chargerID, "error", err.Error())
			return
		}
	}

	slog.Info("simulated charging run reached target soc",
		"charger_id", chargerID, "target_soc", p.TargetSoc)
}

func (s *Simulator) release(chargerID int64, r *run) {
	s.mu.Lock()
	if current, ok := s.runs[chargerID]; ok && current == r {
		delete(s.runs, chargerID)
	}
	s.mu.Unlock()
}
