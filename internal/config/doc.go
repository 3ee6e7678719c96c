// Package config loads typecraft.json, the settings file of the typecraft
// command.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 25565
//	  },
//	  "username": "Steve",
//	  "transport": {
//	    "kind": "websocket",
//	    "url": "ws://localhost:8080/",
//	    "dialTimeout": "10s"
//	  },
//	  "keepAliveInterval": "20s",
//	  "metrics": {
//	    "addr": ":9090"
//	  },
//	  "capture": {
//	    "dir": "packets",
//	    "bucket": "my-captures",
//	    "prefix": "run-1/"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// Every field is optional; missing values take the defaults from New.
// Command-line flags override file values.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := session.New(cfg.Session())
package config
