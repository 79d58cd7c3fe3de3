package metadb

import (
	"context"
	"strings"

	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
)

// Search contains arguments for an attr-based metadata search.
type Search struct {
	Tenant string
	Params *pb.SearchParameters
}

// Verify verifies the search request fields.
func (opts *Search) Verify() error {
	if opts.Params == nil {
		return ErrInvalidRequest.New("search parameters not set")
	}
	if opts.Params.ObjectType == pb.ObjectType_OBJECT_TYPE_NOT_SET {
		return ErrInvalidRequest.New("search object type not set")
	}
	if opts.Params.Search == nil {
		return ErrInvalidRequest.New("search expression not set")
	}
	return nil
}

// Search returns the tags matching a search expression, newest first.
// Without PriorVersions/PriorTags only the latest object version and latest
// tag version are considered. SearchAsOf rewinds both to a point in time.
func (db *DB) Search(ctx context.Context, opts Search) (tags []*pb.Tag, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, err
	}

	query, args, err := db.buildSearchQuery(opts.Params)
	if err != nil {
		return nil, err
	}

	err = db.withRetry(ctx, func(ctx context.Context) (err error) {
		tenantId, err := db.tenantId(ctx, db.db, opts.Tenant)
		if err != nil {
			return err
		}

		rows, err := db.db.QueryContext(ctx, query, append([]interface{}{tenantId}, args...)...)
		if err != nil {
			return err
		}
		defer func() { err = errs.Combine(err, rows.Close()) }()

		tags = tags[:0]
		for rows.Next() {
			var blob []byte
			if err := rows.Scan(&blob); err != nil {
				return err
			}
			tag, err := decodeTag(blob)
			if err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, wrapUnlessCoded(err)
	}
	return tags, nil
}

// buildSearchQuery renders the search expression into SQL over the
// tag_attrs index. Every placeholder after the first (tenant_id) comes from
// the args slice in order.
func (db *DB) buildSearchQuery(params *pb.SearchParameters) (string, []interface{}, error) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(`SELECT t.tag FROM object_tags t
		JOIN object_ids i ON i.tenant_id = t.tenant_id AND i.object_id = t.object_id
		WHERE t.tenant_id = ? AND i.object_type = ?`)
	args = append(args, int32(params.ObjectType))

	var asOf string
	if params.SearchAsOf != nil {
		decoded, err := metadata.DecodeDatetime(params.SearchAsOf)
		if err != nil {
			return "", nil, ErrInvalidRequest.Wrap(err)
		}
		asOf = metadata.EncodeDatetime(decoded).IsoDatetime

		sb.WriteString(` AND t.tag_timestamp <= ?`)
		args = append(args, asOf)
	}

	if !params.PriorVersions {
		sb.WriteString(` AND t.object_version = (
			SELECT MAX(d.object_version) FROM object_definitions d
			WHERE d.tenant_id = t.tenant_id AND d.object_id = t.object_id`)
		if asOf != "" {
			sb.WriteString(` AND d.object_timestamp <= ?`)
			args = append(args, asOf)
		}
		sb.WriteString(` )`)
	}

	if !params.PriorTags {
		sb.WriteString(` AND t.tag_version = (
			SELECT MAX(t2.tag_version) FROM object_tags t2
			WHERE t2.tenant_id = t.tenant_id AND t2.object_id = t.object_id
				AND t2.object_version = t.object_version`)
		if asOf != "" {
			sb.WriteString(` AND t2.tag_timestamp <= ?`)
			args = append(args, asOf)
		}
		sb.WriteString(` )`)
	}

	sb.WriteString(` AND `)
	if err := db.renderExpression(&sb, &args, params.Search); err != nil {
		return "", nil, err
	}

	sb.WriteString(` ORDER BY t.tag_timestamp DESC, t.object_id`)

	return db.rebind(sb.String()), args, nil
}

func (db *DB) renderExpression(sb *strings.Builder, args *[]interface{}, expr *pb.SearchExpression) error {
	switch x := expr.GetExpr().(type) {
	case *pb.SearchExpression_Term:
		return db.renderTerm(sb, args, x.Term)

	case *pb.SearchExpression_Logical:
		logical := x.Logical
		if len(logical.Expr) == 0 {
			return ErrInvalidRequest.New("logical expression has no operands")
		}
		switch logical.Operator {
		case pb.LogicalOperator_AND, pb.LogicalOperator_OR:
			connector := " AND "
			if logical.Operator == pb.LogicalOperator_OR {
				connector = " OR "
			}
			sb.WriteString("( ")
			for i, sub := range logical.Expr {
				if i > 0 {
					sb.WriteString(connector)
				}
				if err := db.renderExpression(sb, args, sub); err != nil {
					return err
				}
			}
			sb.WriteString(" )")
			return nil

		case pb.LogicalOperator_NOT:
			if len(logical.Expr) != 1 {
				return ErrInvalidRequest.New("NOT takes exactly one operand")
			}
			sb.WriteString("NOT ( ")
			if err := db.renderExpression(sb, args, logical.Expr[0]); err != nil {
				return err
			}
			sb.WriteString(" )")
			return nil

		default:
			return ErrInvalidRequest.New("unknown logical operator %v", logical.Operator)
		}

	default:
		return ErrInvalidRequest.New("search expression is empty")
	}
}

// renderTerm emits an EXISTS subquery over tag_attrs. NE is rendered as
// NOT EXISTS of the equality term so that multi-valued attrs behave as
// "no item equals".
func (db *DB) renderTerm(sb *strings.Builder, args *[]interface{}, term *pb.SearchTerm) error {
	if term == nil || term.AttrName == "" {
		return ErrInvalidRequest.New("search term has no attr name")
	}

	column, arg, err := searchColumn(term)
	if err != nil {
		return err
	}

	op := ""
	negate := false
	switch term.Operator {
	case pb.SearchOperator_EQ:
		op = "="
	case pb.SearchOperator_NE:
		op, negate = "=", true
	case pb.SearchOperator_LT:
		op = "<"
	case pb.SearchOperator_LE:
		op = "<="
	case pb.SearchOperator_GT:
		op = ">"
	case pb.SearchOperator_GE:
		op = ">="
	default:
		return ErrInvalidRequest.New("unknown search operator %v", term.Operator)
	}

	if negate {
		sb.WriteString("NOT ")
	}
	sb.WriteString(`EXISTS ( SELECT 1 FROM tag_attrs a
		WHERE a.tenant_id = t.tenant_id AND a.object_id = t.object_id
			AND a.object_version = t.object_version AND a.tag_version = t.tag_version
			AND a.attr_name = ? AND a.attr_type = ? AND a.` + column + ` ` + op + ` ? )`)
	*args = append(*args, term.AttrName, int32(term.AttrType), arg)
	return nil
}

// searchColumn picks the typed column and the comparison argument for a
// term, checking that the search value agrees with the declared attr type.
func searchColumn(term *pb.SearchTerm) (string, interface{}, error) {
	value := term.SearchValue
	if metadata.ValueType(value) != term.AttrType {
		return "", nil, ErrInvalidRequest.New(
			"search value type %v does not match attr type %v",
			metadata.ValueType(value), term.AttrType)
	}

	switch term.AttrType {
	case pb.BasicType_BOOLEAN:
		return "value_boolean", value.GetBooleanValue(), nil
	case pb.BasicType_INTEGER:
		return "value_integer", value.GetIntegerValue(), nil
	case pb.BasicType_FLOAT:
		return "value_float", value.GetFloatValue(), nil
	case pb.BasicType_STRING:
		return "value_string", value.GetStringValue(), nil
	case pb.BasicType_DECIMAL:
		return "value_decimal", value.GetDecimalValue().GetDecimal(), nil
	case pb.BasicType_DATE:
		return "value_date", value.GetDateValue().GetIsoDate(), nil
	case pb.BasicType_DATETIME:
		return "value_datetime", value.GetDatetimeValue().GetIsoDatetime(), nil
	default:
		return "", nil, ErrInvalidRequest.New("unsupported search attr type %v", term.AttrType)
	}
}
