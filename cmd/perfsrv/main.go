package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	perfsim "github.com/Git4amar/perf-aero-sim"
)

var addr string

func init() {
	flag.StringVar(&addr, "addr", ":8086", "listen address")
}

func main() {
	flag.Parse()

	srv := newServer(perfsim.NewFileStore(), perfsim.NewReferenceTransport())
	router := srv.router()
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	log.Printf("perfsrv listening at %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
