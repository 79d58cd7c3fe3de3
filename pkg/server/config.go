package server

// Config holds the listen addresses for one service process.
type Config struct {
	// GrpcAddress is the public gRPC listener, e.g. ":9000".
	GrpcAddress string `yaml:"grpcAddress"`
	// HttpAddress is the gateway listener; empty disables HTTP.
	HttpAddress string `yaml:"httpAddress"`
}
