package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/minionsoliver/snmp-switch/alias"
	"github.com/minionsoliver/snmp-switch/session"
)

// fakeQuerier serves canned responses: Get values per OID, walk results
// keyed by the first column OID.
type fakeQuerier struct {
	values    map[string]session.Value
	tables    map[string][]session.Row
	tableErrs map[string]error
}

func (f *fakeQuerier) Get(oids ...string) ([]session.Value, error) {
	out := make([]session.Value, 0, len(oids))
	for _, oid := range oids {
		v, ok := f.values[oid]
		if !ok {
			return nil, fmt.Errorf("fake: no value for %s", oid)
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeQuerier) WalkTable(columns ...string) ([]session.Row, error) {
	if err, ok := f.tableErrs[columns[0]]; ok {
		return nil, err
	}
	return f.tables[columns[0]], nil
}

func intVal(n uint64) session.Value {
	return session.Value{Kind: session.Integer, Int: n}
}

func textVal(s string) session.Value {
	return session.Value{Kind: session.Text, Text: s}
}

func TestIdentity(t *testing.T) {
	q := &fakeQuerier{values: map[string]session.Value{
		session.OIDSysName:     textVal("sw1"),
		session.OIDSysLocation: textVal("rack3"),
		session.OIDSysDescr:    textVal("X"),
		session.OIDSysUpTime:   intVal(360000), // centiseconds
	}}

	got, err := Identity(q)
	if err != nil {
		t.Fatal(err)
	}
	want := "Name : sw1\nLocation : rack3\nDescr : X\nUptime : 1:00:00\n"
	if got != want {
		t.Errorf("Identity =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		ticks uint64
		want  string
	}{
		{0, "0:00:00"},
		{360000, "1:00:00"},
		{12345, "0:02:03"},
		{8640000 + 366100, "1 days, 1:01:01"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.ticks); got != tt.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func portsFake() *fakeQuerier {
	return &fakeQuerier{
		tables: map[string][]session.Row{
			session.OIDIfDescr: {
				{Index: "1", Cells: []session.Value{textVal("eth0"), intVal(1), intVal(1000000000)}},
				{Index: "2", Cells: []session.Value{textVal("eth1"), intVal(2), intVal(100000000)}},
			},
			session.OIDIfHCInOctets: {
				{Index: "1", Cells: []session.Value{intVal(1500000), intVal(2000)}},
				{Index: "2", Cells: []session.Value{intVal(0), intVal(0)}},
			},
			session.OIDIfInOctets: {
				{Index: "1", Cells: []session.Value{intVal(1500000), intVal(2000)}},
				{Index: "2", Cells: []session.Value{intVal(0), intVal(0)}},
			},
			session.OIDDot1dTpFdbPort: {
				// 00:11:22:33:44:55 learned on port 1
				{Index: "0.17.34.51.68.85", Cells: []session.Value{intVal(1)}},
				// aa:00:00:00:00:01 also on port 1
				{Index: "170.0.0.0.0.1", Cells: []session.Value{intVal(1)}},
			},
		},
		tableErrs: map[string]error{},
	}
}

func TestPorts(t *testing.T) {
	aliases := alias.Table{"00:11:22:33:44:55": "web1"}

	got, err := Ports(portsFake(), aliases)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Octs In (64)",
		"Octs Out (64)",
		"eth0",
		"up",
		"down",
		"1G",
		"100M",
		"1.50M",
		"web1 aa:00:00:00:00:01",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Ports output missing %q:\n%s", want, got)
		}
	}
}

func TestPortsCounterFallback(t *testing.T) {
	q := portsFake()
	q.tableErrs[session.OIDIfHCInOctets] = &session.CapabilityError{Table: "ifHCInOctets"}

	got, err := Ports(q, alias.Table{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Octs In (32)") || !strings.Contains(got, "Octs Out (32)") {
		t.Errorf("fallback output not labelled 32-bit:\n%s", got)
	}
}

func TestPortsCounterFallbackOnEmptyTable(t *testing.T) {
	q := portsFake()
	q.tables[session.OIDIfHCInOctets] = nil

	got, err := Ports(q, alias.Table{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Octs In (32)") {
		t.Errorf("empty ifXTable should fall back to 32-bit counters:\n%s", got)
	}
}

func TestVLANs(t *testing.T) {
	q := &fakeQuerier{
		values: map[string]session.Value{
			session.OIDDot1qMaxSupportedVlans: intVal(256),
			session.OIDDot1qNumVlans:          intVal(2),
		},
		tables: map[string][]session.Row{
			session.OIDDot1qPvid: {
				{Index: "1", Cells: []session.Value{intVal(1)}},
				{Index: "2", Cells: []session.Value{intVal(1)}},
				{Index: "3", Cells: []session.Value{intVal(10)}},
				{Index: "4", Cells: []session.Value{intVal(10)}},
			},
			session.OIDDot1qVlanStaticName: {
				{Index: "1", Cells: []session.Value{
					textVal("default"),
					textVal("\xf0"), // egress: ports 1-4
					textVal("\xc0"), // untagged: ports 1-2
				}},
				{Index: "10", Cells: []session.Value{
					textVal("mgmt"),
					textVal("\x30"), // egress: ports 3-4
					textVal("\x30"), // untagged: ports 3-4
				}},
			},
		},
	}

	got, err := VLANs(q)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "VLANs: 2 configured, 256 supported") {
		t.Errorf("missing summary line:\n%s", got)
	}
	if !strings.Contains(got, " 1  default  U  U  T  T") {
		t.Errorf("default VLAN row wrong:\n%s", got)
	}
	if !strings.Contains(got, "10  mgmt     E  E  U  U") {
		t.Errorf("mgmt VLAN row wrong:\n%s", got)
	}
}

func TestVLANsTooManyPorts(t *testing.T) {
	pvid := make([]session.Row, 33)
	for i := range pvid {
		pvid[i] = session.Row{Index: fmt.Sprint(i + 1), Cells: []session.Value{intVal(1)}}
	}
	q := &fakeQuerier{
		values: map[string]session.Value{
			session.OIDDot1qMaxSupportedVlans: intVal(256),
			session.OIDDot1qNumVlans:          intVal(1),
		},
		tables: map[string][]session.Row{session.OIDDot1qPvid: pvid},
	}

	if _, err := VLANs(q); err == nil {
		t.Error("33 ports: want error, got nil")
	}
}

func TestMacFromIndex(t *testing.T) {
	mac, err := macFromIndex("0.17.34.51.68.85")
	if err != nil {
		t.Fatal(err)
	}
	if mac != "00:11:22:33:44:55" {
		t.Errorf("macFromIndex = %q, want %q", mac, "00:11:22:33:44:55")
	}
	for _, bad := range []string{"1.2.3", "1.2.3.4.5.300", "a.b.c.d.e.f"} {
		if _, err := macFromIndex(bad); err == nil {
			t.Errorf("macFromIndex(%q): want error", bad)
		}
	}
}
