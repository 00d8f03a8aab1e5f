package main

import (
	"errors"
	"fmt"
	"slices"

	"budgetbook/internal/amqp"
	"budgetbook/internal/backend"
	"budgetbook/internal/worker"
)

type mirrorCmd struct {
	To []string `short:"t" default:"sheets" help:"Destinations: file, xlsx, sheets." sep:","`
}

func (c *mirrorCmd) Run(rc *runContext) error {
	if !rc.cfg.AMQPEnabled() {
		return errors.New("mirror needs AMQP_URL")
	}
	names, err := backend.ParseSinkNames(c.To)
	if err != nil {
		return err
	}
	if slices.Contains(names, backend.AMQPSink) {
		return fmt.Errorf("mirror cannot publish back to %s", backend.AMQPSink)
	}
	bc, err := backend.FromAppConfig(rc.cfg, rc.app.Settings().Language)
	if err != nil {
		return err
	}

	res, err := backend.NewFactory(rc.logger.Slog()).CreateSinks(rc.ctx, bc, names)
	if err != nil {
		return err
	}
	defer res.Cleanup()

	client, err := amqp.NewClient(rc.cfg.AMQPURL, rc.cfg.AMQPExchange, rc.cfg.AMQPQueue, rc.cfg.DeviceName)
	if err != nil {
		return err
	}
	defer client.Close()

	return worker.NewMirrorWorker(rc.logger.Slog(), res.Sinks...).Run(rc.ctx, client)
}
