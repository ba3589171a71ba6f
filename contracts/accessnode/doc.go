/*
Package accessnode contains implementation of the contract storing wifi and
vpn access nodes together with user access requests.

Nodes are closed in two phases. First the admin or the operator deactivates
the node, then the owner closes it, removing the record. A node of the same
kind, owner and ID can be registered again after that.

Access requests are accepted only from the holders of the asset contract
tokens, the asset contract is set by the admin.

# Contract notifications

AssetSet notification. This notification is produced when the admin sets the
asset contract.

	AssetSet
	  - name: asset
	    type: Hash160

	WifiNodeRegistered
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: deviceID
	    type: String
	  - name: ssid
	    type: String
	  - name: location
	    type: String
	  - name: pricePerMinute
	    type: Integer

	VpnNodeRegistered
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: did
	    type: String
	  - name: name
	    type: String
	  - name: address
	    type: String
	  - name: isp
	    type: String
	  - name: region
	    type: String
	  - name: location
	    type: String

WifiNodeUpdated and VpnNodeUpdated notifications are produced by the owner's
updates.

	WifiNodeUpdated
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: ssid
	    type: String
	  - name: location
	    type: String
	  - name: pricePerMinute
	    type: Integer

	VpnNodeUpdated
	  - name: id
	    type: Integer
	  - name: status
	    type: Integer
	  - name: region
	    type: String

NodeDeactivated notification. This notification is produced on the first
closing phase.

	NodeDeactivated
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer

NodeClosed notification. This notification is produced when the owner removes
deactivated node.

	NodeClosed
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160

Access request notifications.

	AccessRequested
	  - name: user
	    type: Hash160
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer

	AccessRequestManaged
	  - name: user
	    type: Hash160
	  - name: accepted
	    type: Boolean

	AccessRequestSettled
	  - name: user
	    type: Hash160
	  - name: id
	    type: Integer

	AccessRequestClosed
	  - name: user
	    type: Hash160
	  - name: id
	    type: Integer
*/
package accessnode

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'admin' -> 20-byte script hash
   admin account set on deploy
 - 'asset' -> 20-byte script hash
   asset contract of the access token holders
 - 'authority' -> std.Serialize(common.Authority)
   admin and operator accounts
 - 0x01 + <kind> + <owner> + <id> -> std.Serialize(AccessNode)
   node by its kind, owner and little-endian ID
 - 0x02 + <kind> + <owner> + <user> + <id> -> std.Serialize(AccessRequest)
   user's access request to the node
*/
