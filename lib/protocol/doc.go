// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// Package protocol implements the single-shot push exchange used to
// rename a remote branch: parsing the remote's reference
// advertisement, building the pair of ref-update commands with an
// empty pack trailer, and verifying the report-status response. It
// deliberately speaks only this narrow slice of the smart transport;
// there is no capability negotiation, side-band demultiplexing, or
// object transfer.
package protocol
