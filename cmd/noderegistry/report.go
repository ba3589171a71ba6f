package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/netsepio/netsepio-contract/common"
	"github.com/netsepio/netsepio-contract/contracts/noderegistry/nodestatus"
	"github.com/netsepio/netsepio-contract/rpc/nodeasset"
	"github.com/netsepio/netsepio-contract/rpc/noderegistry"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// errNotFound is returned when the requested record is missing in the
// contract storage.
var errNotFound = errors.New("not found")

// tokensPerRequest is a number of token IDs requested at once from the
// session iterator.
const tokensPerRequest = 64

type reporter struct {
	w        io.Writer
	registry *noderegistry.ContractReader
	asset    *nodeasset.ContractReader
}

func newReporter(w io.Writer, b *remoteBlockchain, d deployment) *reporter {
	r := &reporter{
		w:        w,
		registry: noderegistry.NewReader(b.invoker, d.registry),
	}
	if d.asset != nil {
		r.asset = nodeasset.NewReader(b.invoker, *d.asset)
	}
	return r
}

func (r *reporter) authority() error {
	a, err := r.registry.Authority()
	if err != nil {
		return wrapNotFound(err)
	}

	fmt.Fprintf(r.w, "admin:    %s\n", address.Uint160ToString(a.Admin))
	fmt.Fprintf(r.w, "operator: %s\n", address.Uint160ToString(a.Operator))
	return nil
}

func (r *reporter) node(id string) error {
	n, err := r.registry.GetNode(id)
	if err != nil {
		return wrapNotFound(err)
	}

	fmt.Fprint(r.w, formatNode(n))
	return nil
}

func (r *reporter) checkpoint(owner util.Uint160, id string) error {
	cp, err := r.registry.GetCheckpoint(owner, id)
	if err != nil {
		return wrapNotFound(err)
	}

	fmt.Fprintf(r.w, "standalone checkpoint: %s\n", cp.Data)
	return nil
}

func (r *reporter) tokensOf(owner util.Uint160) error {
	iter, err := r.asset.TokensOf(owner)
	if err != nil {
		return err
	}
	defer func() { _ = iter.Terminate() }()

	fmt.Fprintf(r.w, "tokens of %s:\n", address.Uint160ToString(owner))
	for {
		ids, err := iter.Next(tokensPerRequest)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		for i := range ids {
			fmt.Fprintf(r.w, "  %s\n", encodeTokenID(ids[i]))
		}
	}
}

func (r *reporter) token(encoded string) error {
	id, err := decodeTokenID(encoded)
	if err != nil {
		return err
	}

	owner, err := r.asset.OwnerOf(id)
	if err != nil {
		return wrapNotFound(err)
	}

	frozen, err := r.asset.IsFrozen(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.w, "token:  %s\nowner:  %s\nfrozen: %t\n", encoded, address.Uint160ToString(owner), frozen)
	return nil
}

func formatNode(n *noderegistry.NoderegistryNode) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "id:         %s\n", n.ID)
	fmt.Fprintf(&sb, "name:       %s\n", n.Name)
	fmt.Fprintf(&sb, "type:       %s\n", n.Type)
	fmt.Fprintf(&sb, "owner:      %s\n", address.Uint160ToString(n.Owner))
	fmt.Fprintf(&sb, "registrant: %s\n", address.Uint160ToString(n.Registrant))
	fmt.Fprintf(&sb, "address:    %s\n", n.Address)
	fmt.Fprintf(&sb, "region:     %s\n", n.Region)
	fmt.Fprintf(&sb, "location:   %s\n", n.Location)
	fmt.Fprintf(&sb, "status:     %s\n", nodestatus.Type(n.Status.Int64()))
	if n.Asset != nil {
		fmt.Fprintf(&sb, "asset:      %s\n", encodeTokenID(n.Asset))
	} else {
		sb.WriteString("asset:      <none>\n")
	}
	if n.Checkpoint != "" {
		fmt.Fprintf(&sb, "checkpoint: %s\n", n.Checkpoint)
	}

	return sb.String()
}

func encodeTokenID(id []byte) string {
	return base58.Encode(id)
}

func decodeTokenID(s string) ([]byte, error) {
	id, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode base58 token ID: %w", err)
	}
	if len(id) == 0 {
		return nil, errors.New("empty token ID")
	}
	return id, nil
}

// wrapNotFound marks contract faults caused by missing records with
// errNotFound.
func wrapNotFound(err error) error {
	if err != nil && (strings.Contains(err.Error(), common.ErrRecordNotFound) ||
		strings.Contains(err.Error(), common.ErrAuthorityMissing)) {
		return fmt.Errorf("%w: %w", errNotFound, err)
	}
	return err
}
