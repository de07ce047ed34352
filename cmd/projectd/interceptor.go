package main

import (
	"context"
	"time"

	connect "connectrpc.com/connect"
	"github.com/oklog/ulid/v2"

	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/log"
)

// loggingInterceptor tags every call with a request ID and logs its outcome.
type loggingInterceptor struct {
	logger log.Logger
}

func (i loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		logger := i.logger.With(
			"requestID", ulid.Make().String(),
			"procedure", req.Spec().Procedure,
		)
		start := time.Now()

		res, err := next(ctx, req)
		if err != nil {
			logger.Errorw("Call failed.",
				"code", connect.CodeOf(err).String(),
				"error", err,
				"duration", time.Since(start))
			return nil, err
		}

		logger.Debugw("Call finished.", "duration", time.Since(start))

		return res, nil
	}
}

func (i loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		logger := i.logger.With(
			"requestID", ulid.Make().String(),
			"procedure", conn.Spec().Procedure,
		)
		start := time.Now()

		if err := next(ctx, conn); err != nil {
			logger.Errorw("Streaming call failed.",
				"code", connect.CodeOf(err).String(),
				"error", err,
				"duration", time.Since(start))
			return err
		}

		logger.Debugw("Streaming call finished.", "duration", time.Since(start))

		return nil
	}
}
