package session

// Well-known OIDs for the switch reports: the system group, interface
// counters (32- and 64-bit), the bridge forwarding table and the dot1q
// VLAN tables.
const (
	OIDSysDescr    = ".1.3.6.1.2.1.1.1.0"
	OIDSysUpTime   = ".1.3.6.1.2.1.1.3.0"
	OIDSysName     = ".1.3.6.1.2.1.1.5.0"
	OIDSysLocation = ".1.3.6.1.2.1.1.6.0"

	OIDIfDescr       = ".1.3.6.1.2.1.2.2.1.2"
	OIDIfSpeed       = ".1.3.6.1.2.1.2.2.1.5"
	OIDIfOperStatus  = ".1.3.6.1.2.1.2.2.1.8"
	OIDIfInOctets    = ".1.3.6.1.2.1.2.2.1.10"
	OIDIfOutOctets   = ".1.3.6.1.2.1.2.2.1.16"
	OIDIfHCInOctets  = ".1.3.6.1.2.1.31.1.1.1.6"
	OIDIfHCOutOctets = ".1.3.6.1.2.1.31.1.1.1.10"

	// dot1dTpFdbPort: index is the learned MAC as six decimal octets,
	// value the 1-based bridge port.
	OIDDot1dTpFdbPort = ".1.3.6.1.2.1.17.4.3.1.2"

	OIDDot1qMaxSupportedVlans       = ".1.3.6.1.2.1.17.7.1.1.1.0"
	OIDDot1qNumVlans                = ".1.3.6.1.2.1.17.7.1.1.4.0"
	OIDDot1qPvid                    = ".1.3.6.1.2.1.17.7.1.4.5.1.1"
	OIDDot1qVlanStaticName          = ".1.3.6.1.2.1.17.7.1.4.3.1.1"
	OIDDot1qVlanStaticEgressPorts   = ".1.3.6.1.2.1.17.7.1.4.3.1.2"
	OIDDot1qVlanStaticUntaggedPorts = ".1.3.6.1.2.1.17.7.1.4.3.1.4"
)
