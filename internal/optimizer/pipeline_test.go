package optimizer

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/deckforge/card-order-optimizer/pkg/core"
)

var _ = Describe("Optimize pipeline", func() {
	var (
		opt *Optimizer
		ctx context.Context
	)

	BeforeEach(func() {
		var err error
		opt, err = New(exhaustiveSolver{})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Context("with a mix of required and optional items", func() {
		var p *core.Problem

		BeforeEach(func() {
			table := make(core.PriceTable)
			table.Set("carrion feeder", "v1", 2)
			table.Set("carrion feeder", "v2", 3)
			table.Set("bloodghast", "v2", 4)
			table.Set("gravecrawler", "v1", 1)
			p = &core.Problem{
				Items: []core.Item{
					{Name: "carrion feeder", Quantity: 1, Tags: []string{"black"}},
					{Name: "bloodghast", Quantity: 1, Optional: true, Tags: []string{"black"}},
					{Name: "gravecrawler", Quantity: 1, Optional: true, Tags: []string{"black", "zombie"}},
				},
				Vendors: []core.Vendor{
					{Name: "v1", ShippingCost: 1},
					{Name: "v2", ShippingCost: 1},
				},
				Prices: table,
				Tags:   map[string]core.TagConstraint{"black": {Min: intp(2)}},
			}
		})

		It("should buy the cheapest optional that satisfies the tag minimum", func() {
			res, err := opt.Optimize(ctx, p)
			Expect(err).NotTo(HaveOccurred())

			// carrion feeder is required; the $1 gravecrawler beats the $4
			// bloodghast for the second black card, all from v1.
			Expect(res.SelectedOptional).To(Equal([]string{"gravecrawler"}))
			Expect(res.SkippedOptional).To(Equal([]string{"bloodghast"}))
			Expect(res.ActiveVendors()).To(Equal(1))
			Expect(res.Total).To(BeNumerically("~", 2+1+1, 1e-9))
		})

		It("should report tag counts over purchased items only", func() {
			res, err := opt.Optimize(ctx, p)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Tags).To(HaveLen(1))
			Expect(res.Tags[0].Tag).To(Equal("black"))
			Expect(res.Tags[0].Count).To(Equal(2))
			Expect(res.Tags[0].Satisfied()).To(BeTrue())
		})

		It("should enforce a minimum optional count on top of tag bounds", func() {
			p.MinOptional = 2

			res, err := opt.Optimize(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.SelectedOptional).To(ConsistOf("bloodghast", "gravecrawler"))
		})
	})

	Context("when every vendor charges shipping", func() {
		It("should still purchase required items", func() {
			table := make(core.PriceTable)
			table.Set("swamp", "v1", 0.5)
			p := &core.Problem{
				Items:   []core.Item{{Name: "swamp", Quantity: 4}},
				Vendors: []core.Vendor{{Name: "v1", ShippingCost: 20}},
				Prices:  table,
			}

			res, err := opt.Optimize(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Quantity("swamp")).To(Equal(4))
			Expect(res.Total).To(BeNumerically("~", 22, 1e-9))
		})
	})
})
