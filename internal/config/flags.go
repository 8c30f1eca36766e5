package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC address in format [host]:[port]
//	-d PostgreSQL DSN
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
//	-server sync server address used by the client
//	-adapter-timeout client request timeout
//	-local-driver local store driver (sqlite, memory)
//	-local-dsn local store DSN
//	-sync-interval client sync period (e.g., "30s")
//	-conflict-policy server_wins, local_wins or last_write_wins
//	-verify-equality warn when equal-judged entries differ
//	-batch-size max updates fetched per request
//	-version application version
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN    string
		requestTimeout time.Duration
		jsonConfigPath string
		adapterAddress string
		adapterTimeout time.Duration
		localDriver    string
		localDSN       string
		syncInterval   time.Duration
		conflictPolicy string
		verifyEquality bool
		batchSize      uint64
		version        string
	)

	fs := flag.NewFlagSet("go-sync-resolver", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&adapterAddress, "server", "", "Sync server address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&localDriver, "local-driver", "", "Local storage driver (sqlite, memory)")
	fs.StringVar(&localDSN, "local-dsn", "", "Local storage DSN")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 30s)")
	fs.StringVar(&conflictPolicy, "conflict-policy", "", "Conflict policy (server_wins, local_wins, last_write_wins)")
	fs.BoolVar(&verifyEquality, "verify-equality", false, "Warn when entries judged equal differ")
	fs.Uint64Var(&batchSize, "batch-size", 0, "Max updates fetched per request")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Local: Local{
				Driver: localDriver,
				DSN:    localDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Sync: Sync{
			ConflictPolicy: conflictPolicy,
			VerifyEquality: verifyEquality,
			BatchSize:      batchSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
