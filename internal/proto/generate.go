// Package proto holds the protobuf messages and gRPC service of syncserver.
// The .pb.go files are generated from sync.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative sync.proto
