// Command ord-recordstored serves a record store CAS backend over gRPC.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"openreaction.dev/ordkit/storage"
	"openreaction.dev/ordkit/storage/casconfig"
	"openreaction.dev/ordkit/storage/casregistry"
	"openreaction.dev/ordkit/storage/grpccas"

	_ "openreaction.dev/ordkit/storage/ipfs"
	_ "openreaction.dev/ordkit/storage/localfs"
	_ "openreaction.dev/ordkit/storage/memstore"
)

func main() {
	fs := flag.NewFlagSet("ord-recordstored", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7777", "listen address")
	backend := fs.String("backend", "localfs", "CAS backend name")
	casConfig := fs.String("cas-config", "", "JSON CAS config file (alternative to --backend)")
	listBackends := fs.Bool("list-backends", false, "List supported backends and exit")
	devLog := fs.Bool("dev-log", false, "Human-readable log output")

	casregistry.RegisterFlags(fs, casregistry.UsageDaemon)

	_ = fs.Parse(os.Args[1:])
	if *listBackends {
		for _, b := range casregistry.List(casregistry.UsageDaemon) {
			if b.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	logger, err := newLogger(*devLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	cas, closeFn, err := openCAS(*backend, *casConfig)
	if err != nil {
		logger.Fatal("open backend", zap.Error(err))
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		logger.Fatal("listen", zap.String("addr", *listen), zap.Error(err))
	}
	defer lis.Close()

	s := grpc.NewServer(grpc.UnaryInterceptor(logUnary(logger)))
	grpccas.RegisterCASServer(s, &grpccas.Server{CAS: cas})

	logger.Info("listening",
		zap.String("addr", lis.Addr().String()),
		zap.String("backend", *backend),
	)
	if err := s.Serve(lis); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openCAS(backend, casConfig string) (storage.CAS, func() error, error) {
	if casConfig != "" {
		cfg, err := casconfig.LoadFile(casConfig)
		if err != nil {
			return nil, nil, err
		}
		return cfg.Open(casregistry.UsageDaemon, "")
	}
	return casregistry.Open(backend, casregistry.UsageDaemon)
}

func logUnary(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Warn("rpc", append(fields, zap.Error(err))...)
			return resp, err
		}
		logger.Info("rpc", fields...)
		return resp, err
	}
}
