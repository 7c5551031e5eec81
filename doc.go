/*
Package q931 implements the core of an ISDN Layer-3 signalling stack: the
Q.931/Q.932 call-control protocol engine.

It covers the message codec, information-element codec, per-call state
machine, timer subsystem and dialect dispatch needed to drive circuit
switched ISDN call establishment, maintenance and teardown over a
reliable Layer-2 (LAPD/Q.921) datalink. The datalink itself, physical
channel I/O, tone generation and tracing are external collaborators; this
package only defines the interfaces it expects from them (see Layer2Tx
and Layer4Tx).

A Trunk owns one per-span runtime: its call table, CRV allocator, timers,
dialect tables and scratch buffers. Trunks are not safe for concurrent
use from multiple goroutines; the host must serialise Rx23, Rx43 and Tick
calls for a given trunk, though distinct trunks may run fully in
parallel.
*/
package q931
