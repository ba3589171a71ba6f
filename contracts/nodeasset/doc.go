/*
Package nodeasset contains implementation of the NEP-11 contract holding
soulbound tokens of the registered nodes.

Tokens are minted by other contracts only. The minting contract becomes the
token issuer: it is the only one allowed to freeze, unfreeze, update and burn
the token. Tokens are frozen on mint, frozen tokens can neither be transferred
nor burnt.

# Contract notifications

Transfer notification. This is NEP-11 standard notification, it is produced
on mint (from is null), burn (to is null) and transfer.

	Transfer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray

Frozen notification. This notification is produced when the token is frozen
or unfrozen.

	Frozen
	  - name: tokenId
	    type: ByteArray
	  - name: frozen
	    type: Boolean

URIUpdated notification.

	URIUpdated
	  - name: tokenId
	    type: ByteArray
	  - name: uri
	    type: String
*/
package nodeasset
