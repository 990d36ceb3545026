// Package proto holds the service definitions. Generated code lands in
// per-service subpackages (points, interaction, chat, notification).
package proto

//go:generate protoc --go_out=paths=source_relative:points --go-grpc_out=paths=source_relative:points points.proto
//go:generate protoc --go_out=paths=source_relative:interaction --go-grpc_out=paths=source_relative:interaction interaction.proto
//go:generate protoc --go_out=paths=source_relative:chat --go-grpc_out=paths=source_relative:chat chat.proto
//go:generate protoc --go_out=paths=source_relative:notification --go-grpc_out=paths=source_relative:notification notification.proto
