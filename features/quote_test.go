package features

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"

	"signage-quote/catalog"
	"signage-quote/models"
	"signage-quote/pricing"
	"signage-quote/quote"
	"signage-quote/repository"
	"signage-quote/service"
	"signage-quote/utils"
)

const sessionID = "feature-session"

type noDocuments struct{}

func (noDocuments) GeneratePDF(ctx context.Context, html []byte) ([]byte, error) {
	return nil, errors.New("pdf rendering is not available in feature tests")
}

type quoteTestContext struct {
	ctx     context.Context
	brand   string
	carts   *service.CartService
	quotes  *service.QuoteService
	exports *service.ExportService
	sender  *service.LogSender
	cart    models.CartSnapshot
	quote   *quote.Request
	err     error
}

func (c *quoteTestContext) reset() error {
	log := logrus.New()
	log.Out = io.Discard

	registry, err := catalog.LoadBundled()
	if err != nil {
		return err
	}
	sessions := repository.NewSessionRepository(time.Hour, log)
	c.ctx = context.Background()
	c.brand = ""
	c.sender = service.NewLogSender(log)
	c.carts = service.NewCartService(registry, pricing.NewEngine(log), sessions, log)
	c.quotes = service.NewQuoteService(registry, sessions, quote.NewAssembler(), c.sender, nil, time.Second, log)
	c.exports = service.NewExportService(registry, c.quotes, noDocuments{}, log)
	c.cart = models.CartSnapshot{}
	c.quote = nil
	c.err = nil
	return nil
}

func (c *quoteTestContext) iAmBrowsingTheSite(brand string) error {
	c.brand = brand
	return nil
}

func (c *quoteTestContext) add(req models.AddLineRequest) error {
	resp, err := c.carts.AddItem(c.ctx, sessionID, c.brand, req)
	c.err = err
	if err != nil {
		return nil
	}
	c.cart = resp.Cart
	return nil
}

func (c *quoteTestContext) iAddOfProduct(qty int, productID string) error {
	return c.add(models.AddLineRequest{ProductID: productID, Quantity: qty})
}

func (c *quoteTestContext) iAddOfProductWithOption(qty int, productID, option string) error {
	return c.add(models.AddLineRequest{ProductID: productID, Option: option, Quantity: qty})
}

func (c *quoteTestContext) iAddACustomInch(height, width float64, productID string) error {
	return c.add(models.AddLineRequest{ProductID: productID, Option: utils.CustomOptionKey, Height: height, Width: width, Quantity: 1})
}

func (c *quoteTestContext) myDetailsAre(name, email, company, address string) error {
	_, err := c.carts.SetClient(c.ctx, sessionID, c.brand, models.ClientInfo{
		FullName:        name,
		Email:           email,
		Company:         company,
		PropertyAddress: address,
	})
	return err
}

func (c *quoteTestContext) iPreviewTheQuote() error {
	c.quote, c.err = c.quotes.Preview(c.ctx, sessionID, c.brand, nil)
	return nil
}

func (c *quoteTestContext) iSubmitTheQuote() error {
	c.quote, c.err = c.quotes.Submit(c.ctx, sessionID, c.brand)
	if c.err != nil {
		return fmt.Errorf("submit failed: %w", c.err)
	}
	return nil
}

func (c *quoteTestContext) refreshCart() error {
	snap, err := c.carts.GetCart(c.ctx, sessionID, c.brand)
	if err != nil {
		return err
	}
	c.cart = snap
	return nil
}

func (c *quoteTestContext) theCartTotalIs(want string) error {
	if err := c.refreshCart(); err != nil {
		return err
	}
	if got := utils.FormatUSD(c.cart.Total); got != want {
		return fmt.Errorf("expected cart total %s, got %s", want, got)
	}
	return nil
}

func (c *quoteTestContext) theCartHoldsItems(want int) error {
	if err := c.refreshCart(); err != nil {
		return err
	}
	if c.cart.ItemCount != want {
		return fmt.Errorf("expected %d items, got %d", want, c.cart.ItemCount)
	}
	return nil
}

func (c *quoteTestContext) theCartHasLines(want int) error {
	if err := c.refreshCart(); err != nil {
		return err
	}
	if len(c.cart.Items) != want {
		return fmt.Errorf("expected %d lines, got %d", want, len(c.cart.Items))
	}
	return nil
}

func (c *quoteTestContext) lastLine() (models.LineItem, error) {
	if c.err != nil {
		return models.LineItem{}, fmt.Errorf("previous step failed: %w", c.err)
	}
	if len(c.cart.Items) == 0 {
		return models.LineItem{}, errors.New("cart is empty")
	}
	return c.cart.Items[len(c.cart.Items)-1], nil
}

func (c *quoteTestContext) theLastLineCoversSquareFeet(want float64) error {
	line, err := c.lastLine()
	if err != nil {
		return err
	}
	if math.Abs(line.Sqft-want) > 0.005 {
		return fmt.Errorf("expected %.2f sqft, got %.4f", want, line.Sqft)
	}
	return nil
}

func (c *quoteTestContext) theLastLineIsPendingReview() error {
	line, err := c.lastLine()
	if err != nil {
		return err
	}
	if !line.PricePending() {
		return fmt.Errorf("expected line %s to be pending review, price is %s", line.ID, line.UnitPrice)
	}
	return nil
}

func (c *quoteTestContext) theRequestFailsWith(substring string) error {
	if c.err == nil {
		return errors.New("expected the request to fail but it succeeded")
	}
	if !strings.Contains(c.err.Error(), substring) {
		return fmt.Errorf("expected error to contain %q, got %q", substring, c.err.Error())
	}
	return nil
}

func (c *quoteTestContext) theQuoteNumberLooksLike(pattern string) error {
	if c.err != nil {
		return fmt.Errorf("preview failed: %w", c.err)
	}
	if !regexp.MustCompile(pattern).MatchString(c.quote.Number()) {
		return fmt.Errorf("quote number %q does not match %s", c.quote.Number(), pattern)
	}
	return nil
}

func (c *quoteTestContext) notificationsWereSent(want int) error {
	if got := len(c.sender.Sent()); got != want {
		return fmt.Errorf("expected %d notifications, got %d", want, got)
	}
	return nil
}

func (c *quoteTestContext) theSpreadsheetContains(text string) error {
	a, err := c.exports.Spreadsheet(c.ctx, sessionID, c.brand)
	if err != nil {
		return err
	}
	file, err := xlsx.OpenBinary(a.Data)
	if err != nil {
		return err
	}
	for _, sheet := range file.Sheets {
		for _, row := range sheet.Rows {
			for _, cell := range row.Cells {
				if strings.Contains(cell.Value, text) {
					return nil
				}
			}
		}
	}
	return fmt.Errorf("spreadsheet %s does not contain %q", a.FileName, text)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &quoteTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^I am browsing the "([^"]*)" site$`, tc.iAmBrowsingTheSite)
	ctx.Step(`^my details are "([^"]*)", "([^"]*)", "([^"]*)" and "([^"]*)"$`, tc.myDetailsAre)

	// When steps
	ctx.Step(`^I add (\d+) of product "([^"]*)"$`, tc.iAddOfProduct)
	ctx.Step(`^I add (\d+) of product "([^"]*)" with option '([^']*)'$`, tc.iAddOfProductWithOption)
	ctx.Step(`^I add a custom (\d+(?:\.\d+)?) by (\d+(?:\.\d+)?) inch "([^"]*)"$`, tc.iAddACustomInch)
	ctx.Step(`^I preview the quote$`, tc.iPreviewTheQuote)
	ctx.Step(`^I submit the quote$`, tc.iSubmitTheQuote)

	// Then steps
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the cart holds (\d+) items$`, tc.theCartHoldsItems)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the last line covers (\d+(?:\.\d+)?) square feet$`, tc.theLastLineCoversSquareFeet)
	ctx.Step(`^the last line is pending review$`, tc.theLastLineIsPendingReview)
	ctx.Step(`^the request fails with "([^"]*)"$`, tc.theRequestFailsWith)
	ctx.Step(`^the quote number looks like "([^"]*)"$`, tc.theQuoteNumberLooksLike)
	ctx.Step(`^(\d+) notifications? (?:was|were) sent$`, tc.notificationsWereSent)
	ctx.Step(`^the spreadsheet contains "([^"]*)"$`, tc.theSpreadsheetContains)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"quote.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
