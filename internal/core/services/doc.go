// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. The pipeline is the only service that
// reaches the network, and only through the ModelGateway port.
package services
