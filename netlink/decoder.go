// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

// decodeLinkReply parses a RTM_NEWLINK/GETLINK reply body into its
// InterfaceInfo header and attribute table.
func decodeLinkReply(msg rtnetlinkMessage) (InterfaceInfo, AttributeTable, error) {
	info, err := decodeInterfaceInfo(msg.Body)
	if err != nil {
		return InterfaceInfo{}, nil, err
	}
	return info, msg.Attrs, nil
}

// decodeAddressReply parses a RTM_NEWADDR/GETADDR reply body into its
// AddressInfo header and attribute table.
func decodeAddressReply(msg rtnetlinkMessage) (AddressInfo, AttributeTable, error) {
	info, err := decodeAddressInfo(msg.Body)
	if err != nil {
		return AddressInfo{}, nil, err
	}
	return info, msg.Attrs, nil
}
