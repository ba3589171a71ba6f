/*
Package noderegistry contains implementation of the NetSepio node registry
contract.

Registry stores network nodes addressed by their unique string identifiers.
A node is registered by any account on behalf of an owner, its status is
managed by the admin or the delegated operator, checkpoints are submitted by
the owner or the admin. The admin may bind a node to a soulbound token of the
collection asset contract; such a node can be deactivated by its owner only
together with the token, which is unfrozen and burnt in the same transaction.

The admin account is set on deploy and never changes. The operator is
delegated by the admin via UpdateAuthority.

# Contract notifications

AuthorityUpdated notification. This notification is produced when the
authority is initialized or the operator is changed.

	AuthorityUpdated
	  - name: operator
	    type: Hash160

CollectionCreated notification. This notification is produced once, when the
admin sets the asset collection.

	CollectionCreated
	  - name: asset
	    type: Hash160
	  - name: name
	    type: String
	  - name: uri
	    type: String

NodeRegistered notification. This notification is produced when a new node is
registered.

	NodeRegistered
	  - name: id
	    type: String
	  - name: name
	    type: String
	  - name: nodeType
	    type: String
	  - name: config
	    type: String
	  - name: address
	    type: String
	  - name: region
	    type: String
	  - name: location
	    type: String
	  - name: metadata
	    type: String
	  - name: owner
	    type: Hash160

NodeStatusUpdated notification. Supported states: offline/online/maintenance.

	NodeStatusUpdated
	  - name: id
	    type: String
	  - name: status
	    type: Integer

CheckpointCreated notification.

	CheckpointCreated
	  - name: id
	    type: String
	  - name: data
	    type: String

CheckpointSubmitted notification. This notification is produced when the
operator submits standalone checkpoint.

	CheckpointSubmitted
	  - name: owner
	    type: Hash160
	  - name: id
	    type: String
	  - name: data
	    type: String

NodeMinted notification. This notification is produced when a token is bound
to the node.

	NodeMinted
	  - name: id
	    type: String
	  - name: asset
	    type: ByteArray

NodeMetadataUpdated notification.

	NodeMetadataUpdated
	  - name: id
	    type: String
	  - name: uri
	    type: String

NodeDeactivated notification. This notification is produced when the node is
removed by its owner.

	NodeDeactivated
	  - name: id
	    type: String
	  - name: owner
	    type: Hash160
*/
package noderegistry

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'admin' -> 20-byte script hash
   admin account set on deploy
 - 'authority' -> std.Serialize(common.Authority)
   admin and operator accounts
 - 'collection' -> std.Serialize(Collection)
   asset collection the nodes are bound to
 - 0x01 + RIPEMD160(<id>) -> std.Serialize(Node)
   node by its identifier
 - 0x02 + RIPEMD160(<owner> + <id>) -> std.Serialize(Checkpoint)
   standalone checkpoint of the owner's node

# Lifecycle
Node is registered in Offline state and can be switched to any of
Offline/Online/Maintenance states. There is no stored closed state: the node
is removed by DeactivateNode, after that the identifier can be registered
again from scratch.
*/
