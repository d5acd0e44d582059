// Copyright 2025 the snmp-switch authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package session wraps a gosnmp v2c session for single-host, read-only
// report queries.
package session

import (
	"log/slog"
	"strings"

	"github.com/gosnmp/gosnmp"
)

// Client is a blocking SNMP session against one agent.
type Client struct {
	opts *Options
	conn *gosnmp.GoSNMP
}

// NewClient creates a Client with the given options applied over defaults.
func NewClient(opts ...Option) *Client {
	o := NewOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Client{opts: o}
}

// Options returns the client options.
func (c *Client) Options() *Options {
	return c.opts
}

// Connect opens the UDP socket.
func (c *Client) Connect() error {
	g := &gosnmp.GoSNMP{
		Target:             c.opts.Target,
		Port:               uint16(c.opts.Port),
		Community:          c.opts.Community,
		Version:            gosnmp.Version2c,
		Timeout:            c.opts.Timeout,
		Retries:            c.opts.Retries,
		ExponentialTimeout: true,
	}
	if c.opts.Logger != nil {
		g.Logger = gosnmp.NewLogger(slog.NewLogLogger(c.opts.Logger.Handler(), slog.LevelDebug))
	}
	if err := g.Connect(); err != nil {
		return &ProtocolError{Op: "connect", Err: err}
	}
	c.conn = g
	return nil
}

// Close releases the socket.
func (c *Client) Close() {
	if c.conn != nil && c.conn.Conn != nil {
		c.conn.Conn.Close()
	}
	c.conn = nil
}

// Get fetches one value per OID, in argument order.
func (c *Client) Get(oids ...string) ([]Value, error) {
	if c.conn == nil {
		return nil, ErrNotConnected
	}
	pkt, err := c.conn.Get(oids)
	if err != nil {
		return nil, &ProtocolError{Op: "get", Err: err}
	}
	if pkt.Error != gosnmp.NoError {
		return nil, &ProtocolError{
			Op:     "get",
			Status: errorStatusName(pkt.Error),
			Index:  int(pkt.ErrorIndex),
		}
	}
	values := make([]Value, 0, len(pkt.Variables))
	for _, pdu := range pkt.Variables {
		values = append(values, FromPDU(pdu))
	}
	return values, nil
}

// Row is one table row: the instance index shared by the walked columns
// and one value per requested column.
type Row struct {
	Index string
	Cells []Value
}

// WalkTable walks one or more parallel table columns with GETNEXT and
// zips them into rows, one per discovered instance, in walk order. The
// row index comes from the first column; columns shorter than the first
// truncate the result.
func (c *Client) WalkTable(columns ...string) ([]Row, error) {
	if c.conn == nil {
		return nil, ErrNotConnected
	}
	if len(columns) == 0 {
		return nil, nil
	}

	indexes, first, err := c.walkColumn(columns[0])
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(indexes))
	for i, idx := range indexes {
		rows[i] = Row{Index: idx, Cells: make([]Value, 0, len(columns))}
		rows[i].Cells = append(rows[i].Cells, first[i])
	}

	for _, col := range columns[1:] {
		_, values, err := c.walkColumn(col)
		if err != nil {
			return nil, err
		}
		if len(values) < len(rows) {
			rows = rows[:len(values)]
		}
		for i := range rows {
			rows[i].Cells = append(rows[i].Cells, values[i])
		}
	}
	return rows, nil
}

// walkColumn walks a single column, returning instance indexes and values
// in discovery order.
func (c *Client) walkColumn(oid string) ([]string, []Value, error) {
	var (
		indexes []string
		values  []Value
	)
	prefix := oid + "."
	err := c.conn.Walk(oid, func(pdu gosnmp.SnmpPDU) error {
		if !strings.HasPrefix(pdu.Name, prefix) {
			return nil
		}
		indexes = append(indexes, strings.TrimPrefix(pdu.Name, prefix))
		values = append(values, FromPDU(pdu))
		return nil
	})
	if err != nil {
		return nil, nil, &ProtocolError{Op: "walk " + oid, Err: err}
	}
	return indexes, values, nil
}
