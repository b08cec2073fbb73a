package rift

// Package rift is the Go driver for RiftDB, a remote document database spoken
// to over HTTP with JSON payloads. It provides:
//
// - A typed value model (Ref, SetRef, Time, Date) for database values with no
//   native JSON representation
// - A bidirectional codec between those values and the tagged wire format
//   (Encode/Decode; tags @ref, @set, @ts, @date, @obj)
// - A result envelope (RequestResult) and a typed error taxonomy decoded from
//   error payloads
// - A thin HTTP client plus pagination and request-logging helpers
//
// Design policy:
// - The codec and builder are pure, synchronous and stateless; every value is
//   immutable once constructed, so unrestricted concurrent use needs no
//   locking.
// - Query expressions are built with package query; the root package only
//   serializes them.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	c := rift.NewClient(secret, rift.Endpoint("http://localhost:8443"))
//	v, err := c.Query(ctx, query.Get(rift.NewRef("classes/frogs", "123")))
//
//	wire, err := rift.Encode(rift.NewRef("classes/frogs"))
//	val, err := rift.Decode(wire)
