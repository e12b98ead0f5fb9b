package main

import (
	"flag"
	"log"
	"os"
	"path"

	"github.com/onemorebsmith/rollercoin-calc/src/calcserver"
	"gopkg.in/yaml.v2"
)

func main() {
	pwd, _ := os.Getwd()
	fullPath := path.Join(pwd, "config.yaml")
	log.Printf("loading config @ `%s`", fullPath)
	rawCfg, err := os.ReadFile(fullPath)
	if err != nil {
		log.Printf("config file not found: %s", err)
		os.Exit(1)
	}
	cfg := calcserver.ServerConfig{}
	if err := yaml.Unmarshal(rawCfg, &cfg); err != nil {
		log.Printf("failed parsing config file: %s", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.ListenPort, "listen", cfg.ListenPort, "address to serve the api on, default `:8080`")
	flag.StringVar(&cfg.PromPort, "prom", cfg.PromPort, "address to serve prom stats, default `:2112`")
	flag.StringVar(&cfg.HealthCheckPort, "hcp", cfg.HealthCheckPort, `(rarely used) if defined will expose a health check on /readyz, default ""`)
	flag.StringVar(&cfg.PostgresConfig, "pg", cfg.PostgresConfig, `config string for the postgres connection`)
	flag.StringVar(&cfg.RedisConfig.Address, "redis", cfg.RedisConfig.Address, `address of the redis instance`)
	flag.StringVar(&cfg.LeagueFile, "leagues", cfg.LeagueFile, `yaml league table to use instead of the built-in one`)
	flag.DurationVar(&cfg.FeedCooldown, "cooldown", cfg.FeedCooldown, "minimum gap between league feed uploads, default `15s`")
	flag.Parse()

	log.Println("----------------------------------")
	log.Printf("initializing calculator")
	log.Printf("\tlisten:        %s", cfg.ListenPort)
	log.Printf("\tprom:          %s", cfg.PromPort)
	log.Printf("\thealth check:  %s", cfg.HealthCheckPort)
	log.Printf("\tredis:         %s", cfg.RedisConfig.Address)
	log.Printf("\tleagues:       %s", cfg.LeagueFile)
	log.Printf("\tcooldown:      %s", cfg.FeedCooldown)
	log.Println("----------------------------------")

	if err := calcserver.ListenAndServe(cfg); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
