package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"elevmaint/audit"
	"elevmaint/config"
	"elevmaint/console"
	"elevmaint/controller"
	"elevmaint/pacer"
	"elevmaint/techauth"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default car configuration")
	envPath := flag.String("env", "", "dotenv file with TECHNICIAN_CODE and interval overrides")
	auditPath := flag.String("audit", "", "Append technician and safety events as JSON lines to this file")
	fast := flag.Bool("fast", false, "Skip all pacing delays")
	flag.Parse()
	defer glog.Flush()

	if err := run(*configPath, *envPath, *auditPath, *fast); err != nil {
		glog.Error(err)
		fmt.Fprintln(os.Stderr, err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(configPath, envPath, auditPath string, fast bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	if envPath != "" {
		if err := cfg.ApplyEnvFile(envPath); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	auditLog := audit.Nop()
	if auditPath != "" {
		file, err := os.OpenFile(auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open audit log %s: %w", auditPath, err)
		}
		defer file.Close()
		auditLog = audit.New(file)
	}

	var p pacer.Pacer = pacer.Realtime{}
	if fast {
		p = pacer.Instant{}
	}

	return session(cfg, os.Stdin, os.Stdout, p, auditLog)
}

func session(cfg config.Config, in io.Reader, out io.Writer, p pacer.Pacer, auditLog *audit.Log) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	auth := techauth.New(cfg.TechnicianCode, scanner, out, auditLog)
	car, err := controller.NewCar(cfg, out, p, auth, auditLog)
	if err != nil {
		return err
	}
	glog.Infof("car ready at floor %d, limits %d trips / %d faults", car.GetFloor(), cfg.MaxTrips, cfg.MaxFaults)

	shutdown, err := console.New(car, scanner, out, p, cfg).Run()
	if err != nil {
		return err
	}
	if shutdown {
		glog.Info("session ended by emergency shutdown")
	}
	return nil
}
