package server

import (
	"bytes"
	"net/http"
	"os"
	"runtime/pprof"
	"time"

	"github.com/google/pprof/profile"
	"github.com/shirou/gopsutil/process"
)

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

// processUsage samples the CPU share and resident memory of this process.
func processUsage() (resourceRsp, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return resourceRsp{}, err
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		return resourceRsp{}, err
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		return resourceRsp{}, err
	}

	return resourceRsp{CPUPercent: cpuPercent, MemorySize: mem.RSS}, nil
}

func (s *Server) listResources(w http.ResponseWriter, _ *http.Request) {
	rsp, err := processUsage()
	if err != nil {
		http.Error(w, "Cannot read process usage: "+err.Error(),
			http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, rsp)
}

func (s *Server) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	time.Sleep(s.profileDuration)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		http.Error(w, "Cannot parse profile: "+err.Error(),
			http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, prof)
}
