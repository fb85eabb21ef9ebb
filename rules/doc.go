// Package rules maps free-text input to replies.
//
// Includes:
//   - Rule: a named handler that may claim an incoming message.
//   - Registry(): the fixed, ordered rule chain; first claiming rule wins.
//   - Responder: runs the chain with an injectable clock and RNG.
//   - Invariants: Respond never fails (the last rule claims everything);
//     only the name rule mutates the memory record.
package rules
