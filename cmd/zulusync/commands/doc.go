// Package commands defines the zulusync CLI, a stand-in for the phone that
// sends UTC sync messages to a host watch face.
//
// Commands
//
//   - send     Publish a sync message over NATS and wait for the ack
//   - encode   Print the hex sync message for a timestamp
//   - decode   Print the tuples of a hex message
//
// The watch face subscribes when started with -nats or with bridge.enabled
// set in its config.
package commands
