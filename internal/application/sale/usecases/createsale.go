package usecases

import (
	"context"
	"time"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/identifier"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type SaleItemInput struct {
	ProductID uint
	Quantity  int
}

type CreateSaleCommand struct {
	CustomerID     uint
	SalesUserID    uint
	Items          []SaleItemInput
	TaxAmount      float64
	DiscountAmount float64
	Notes          string
}

// CreateSaleUseCase builds an invoice. Each line snapshots the product's
// current price and debits its stock; number generation, stock movement,
// and the insert commit in one transaction.
type CreateSaleUseCase struct {
	saleRepo     sale.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	txMgr        transactionManager
	logger       logger.Interface
}

func NewCreateSaleUseCase(
	saleRepo sale.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	txMgr transactionManager,
	logger logger.Interface,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateSaleUseCase) Execute(ctx context.Context, cmd CreateSaleCommand) (*SaleDTO, error) {
	uc.logger.Infow("creating sale", "customer_id", cmd.CustomerID, "items", len(cmd.Items))

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}
	if cmd.SalesUserID == 0 {
		return nil, errors.NewValidationError("sales user ID is required")
	}
	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError("at least one item is required")
	}

	exists, err := uc.customerRepo.Exists(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewReferenceError("customer does not exist")
	}

	var created *sale.Sale
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		items := make([]*sale.Item, 0, len(cmd.Items))
		for _, input := range cmd.Items {
			prod, err := uc.productRepo.FindByID(txCtx, input.ProductID)
			if err != nil {
				return err
			}
			if prod == nil {
				return errors.NewReferenceError("product does not exist")
			}
			if !prod.IsActive() {
				return errors.NewValidationError("product is inactive: " + prod.Code())
			}
			if err := prod.DecreaseStock(input.Quantity); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.productRepo.Update(txCtx, prod); err != nil {
				return err
			}

			item, err := sale.NewItem(prod.ID(), input.Quantity, prod.Price())
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			items = append(items, item)
		}

		newSale, err := sale.NewSale(
			cmd.CustomerID,
			cmd.SalesUserID,
			items,
			cmd.TaxAmount,
			cmd.DiscountAmount,
			cmd.Notes,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		seq, err := uc.saleRepo.NextSequence(txCtx)
		if err != nil {
			return err
		}
		number := identifier.Format(constants.InvoiceNumberPrefix, time.Now(), seq)
		if err := newSale.SetInvoiceNumber(number); err != nil {
			return errors.NewInternalError(err.Error())
		}

		if err := uc.saleRepo.Save(txCtx, newSale); err != nil {
			return err
		}

		created = newSale
		return nil
	})
	if txErr != nil {
		if errors.IsDuplicateError(txErr) {
			return nil, errors.NewConflictError("invoice number already exists")
		}
		uc.logger.Errorw("failed to create sale", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("sale created",
		"sale_id", created.ID(),
		"invoice_number", created.InvoiceNumber(),
		"total_amount", created.TotalAmount(),
	)
	return toSaleDTO(created), nil
}
