// Package health exposes process and hub statistics on an HTTP endpoint.
package health

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Source reports live hub counters.
type Source interface {
	RoomCount() int
	ClientCount() int
}

type Stats struct {
	Rooms         int     `json:"rooms"`
	Clients       int     `json:"clients"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	Goroutines    int     `json:"goroutines"`
	CPUPercent    float64 `json:"cpuPercent,omitempty"`
	RSSBytes      uint64  `json:"rssBytes,omitempty"`
}

// Reporter samples the current process and a hub counter source.
type Reporter struct {
	src     Source
	proc    *process.Process
	started time.Time
}

func NewReporter(src Source) *Reporter {
	r := &Reporter{src: src, started: time.Now()}
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Printf("health: process stats unavailable: %v", err)
	} else {
		r.proc = proc
	}
	return r
}

func (r *Reporter) Stats() Stats {
	s := Stats{
		Rooms:         r.src.RoomCount(),
		Clients:       r.src.ClientCount(),
		UptimeSeconds: time.Since(r.started).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
	}
	if r.proc != nil {
		if cpu, err := r.proc.CPUPercent(); err == nil {
			s.CPUPercent = cpu
		}
		if mem, err := r.proc.MemoryInfo(); err == nil && mem != nil {
			s.RSSBytes = mem.RSS
		}
	}
	return s
}

func (r *Reporter) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(r.Stats())
}
