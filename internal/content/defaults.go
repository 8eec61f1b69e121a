// Package content owns the editable content schema: the hard-coded default
// aggregate, the bilingual normalization rules, the migration engine that
// upgrades legacy persisted documents, and the static field path resolver.
package content

import "github.com/jadebrew/site-manager/internal/models"

// Defaults returns a fresh copy of the hard-coded default site content.
// Callers may mutate the result freely.
func Defaults() *models.SiteContent {
	return &models.SiteContent{
		Hero: models.HeroSection{
			Visible:  true,
			Title:    models.L("翡翠茶集", "Jade Brew"),
			Tagline:  models.L("一杯好茶，成就一门好生意", "Good tea, good business"),
			Subtitle: models.L("新中式茶饮连锁品牌，全国招商加盟中", "A new-style tea chain, now franchising nationwide"),
			CTALabel: models.L("立即咨询加盟", "Ask about franchising"),
		},
		Model: models.ModelSection{
			Visible:     true,
			Title:       models.L("加盟模式", "Franchise Model"),
			Subtitle:    models.L("低门槛起步，总部全程扶持", "Low barrier to entry with full headquarters support"),
			BasePrice:   "8.8万",
			GrossMargin: "65%",
			Points: []models.ModelPoint{
				{
					Label:  models.L("加盟费", "Franchise fee"),
					Detail: models.L("含品牌授权与开业筹备", "Includes brand license and opening preparation"),
					Value:  "3.98万",
				},
				{
					Label:  models.L("保证金", "Deposit"),
					Detail: models.L("合同期满无违约全额退还", "Fully refunded at contract end without breach"),
					Value:  "1万",
				},
				{
					Label:  models.L("设备及首批物料", "Equipment and first stock"),
					Detail: models.L("统一供应，出厂价结算", "Supplied centrally at factory prices"),
					Value:  "3.9万",
				},
			},
		},
		Process: models.ProcessSection{
			Visible:  true,
			Title:    models.L("加盟流程", "How It Works"),
			Subtitle: models.L("从签约到开业，最快45天", "From signing to opening in as little as 45 days"),
			Phases: []models.ProcessPhase{
				{
					Name:     models.L("意向洽谈", "Initial talks"),
					Duration: models.L("第1-7天", "Days 1-7"),
					Benefits: []models.LocalizedText{
						models.L("一对一加盟顾问", "Dedicated franchise advisor"),
						models.L("选址评估报告", "Site evaluation report"),
					},
					Obligations: []models.LocalizedText{
						models.L("提交意向城市与预算", "Submit target city and budget"),
					},
				},
				{
					Name:     models.L("签约筹备", "Signing and preparation"),
					Duration: models.L("第8-30天", "Days 8-30"),
					Benefits: []models.LocalizedText{
						models.L("统一门店设计方案", "Standard store design package"),
						models.L("总部实操培训14天", "14 days of hands-on training at HQ"),
					},
					Obligations: []models.LocalizedText{
						models.L("确认店面租赁合同", "Confirm the store lease"),
						models.L("完成装修验收", "Pass the fit-out inspection"),
					},
				},
				{
					Name:     models.L("开业运营", "Opening and operations"),
					Duration: models.L("第31-45天", "Days 31-45"),
					Benefits: []models.LocalizedText{
						models.L("开业驻店督导7天", "7 days of on-site opening supervision"),
						models.L("区域保护政策", "Territorial protection policy"),
					},
					Obligations: []models.LocalizedText{
						models.L("执行统一品控标准", "Follow the unified quality standard"),
					},
				},
			},
		},
		Showcase: models.ShowcaseSection{
			Visible:  true,
			Title:    models.L("门店实拍", "Our Stores"),
			Subtitle: models.L("全国300+门店持续增长中", "300+ stores nationwide and growing"),
			Items: []models.ShowcaseItem{
				{Caption: models.L("杭州湖滨银泰店", "Hangzhou Hubin store")},
				{Caption: models.L("成都春熙路店", "Chengdu Chunxi Road store")},
				{Caption: models.L("长沙五一广场店", "Changsha Wuyi Square store")},
			},
		},
		Comparison: models.ComparisonSection{
			Visible:     true,
			Title:       models.L("为什么选择我们", "Why Choose Us"),
			OursLabel:   models.L("翡翠茶集", "Jade Brew"),
			OthersLabel: models.L("普通品牌", "Typical brands"),
			Rows: []models.ComparisonRow{
				{
					Category: models.L("原料", "Ingredients"),
					Ours:     models.L("原叶现萃，产地直采", "Whole-leaf brews sourced at origin"),
					Others:   models.L("茶粉冲调", "Powdered tea mixes"),
				},
				{
					Category: models.L("供应链", "Supply chain"),
					Ours:     models.L("自有仓配，48小时达", "In-house warehousing, 48h delivery"),
					Others:   models.L("第三方代发", "Third-party fulfilment"),
				},
				{
					Category: models.L("扶持", "Support"),
					Ours:     models.L("督导驻店带教", "Supervisors coach in store"),
					Others:   models.L("仅远程指导", "Remote guidance only"),
				},
			},
		},
		Financials: models.FinancialsSection{
			Visible:    true,
			Title:      models.L("投资预算", "Investment Breakdown"),
			Subtitle:   models.L("以标准店30㎡测算", "Based on a standard 30㎡ store"),
			Disclaimer: models.L("以上数据仅供参考，实际以当地情况为准", "Figures are indicative only; actual costs vary by location"),
			Rows: []models.FinancialRow{
				{
					Item:   models.L("加盟费用", "Franchise fee"),
					Amount: "3.98万",
					Note:   models.L("一次性", "One-off"),
				},
				{
					Item:   models.L("设备物料", "Equipment and materials"),
					Amount: "3.9万",
					Note:   models.L("含首批原料", "Includes first batch of ingredients"),
				},
				{
					Item:   models.L("装修费用", "Fit-out"),
					Amount: "约4万",
					Note:   models.L("按1300元/㎡估算", "Estimated at 1,300 CNY per ㎡"),
				},
			},
		},
		MenuSection: models.MenuHeaderSection{
			Visible:  true,
			Title:    models.L("招牌产品", "Signature Drinks"),
			Subtitle: models.L("每季上新，常年热销", "Seasonal launches, year-round bestsellers"),
		},
		FAQ: models.FAQSection{
			Visible: true,
			Title:   models.L("常见问题", "FAQ"),
			Items: []models.FAQItem{
				{
					Question: models.L("没有餐饮经验可以加盟吗？", "Can I franchise without restaurant experience?"),
					Answer:   models.L("可以。总部提供14天实操培训与开业驻店督导。", "Yes. HQ provides 14 days of training and on-site opening supervision."),
				},
				{
					Question: models.L("回本周期一般多久？", "How long until the investment pays back?"),
					Answer:   models.L("标准店通常在8-14个月，视商圈与运营情况而定。", "Standard stores typically take 8-14 months depending on location and operations."),
				},
				{
					Question: models.L("原料必须从总部采购吗？", "Must ingredients come from HQ?"),
					Answer:   models.L("核心原料统一供应以保证品质，辅料可在指定范围内自采。", "Core ingredients are supplied centrally for quality; approved sundries may be sourced locally."),
				},
			},
		},
		Partner: models.PartnerSection{
			Visible:   true,
			Title:     models.L("成为合伙人", "Become a Partner"),
			Subtitle:  models.L("留下联系方式，招商经理将在24小时内与您联系", "Leave your details and a franchise manager will reach you within 24 hours"),
			FormTitle: models.L("加盟意向登记", "Franchise interest form"),
			Requirements: []models.LocalizedText{
				models.L("认同品牌理念，接受统一管理", "Share the brand vision and accept unified management"),
				models.L("具备15万元以上的启动资金", "Have at least 150,000 CNY in starting capital"),
				models.L("能够亲自参与门店经营", "Be personally involved in running the store"),
			},
		},
		Footer: models.FooterSection{
			Visible: true,
			Slogan:  models.L("做一杯让人记住的茶", "Brewing tea worth remembering"),
			Address: models.L("浙江省杭州市西湖区转塘街道茶源路88号", "88 Chayuan Road, Zhuantang, Xihu District, Hangzhou, Zhejiang"),
			Phone:   "400-880-1688",
			Email:   "franchise@jadebrew.cn",
			ICP:     "浙ICP备2023004588号",
		},
		Menu: []models.MenuItem{
			{
				ID:          1,
				Name:        models.L("翡翠龙井鲜奶", "Jade Longjing Latte"),
				Tag:         models.L("招牌", "Signature"),
				Desc:        models.L("明前龙井现萃，搭配冷藏鲜奶", "Pre-Qingming Longjing freshly brewed with chilled milk"),
				Price:       "18",
				Eng:         "Jade Longjing Latte",
				Ingredients: "龙井茶底/鲜奶/轻乳盖",
			},
			{
				ID:          2,
				Name:        models.L("桂花乌龙冻", "Osmanthus Oolong Jelly"),
				Tag:         models.L("热销", "Bestseller"),
				Desc:        models.L("桂花窨制乌龙，入口带茶冻", "Osmanthus-scented oolong served over tea jelly"),
				Price:       "16",
				Eng:         "Osmanthus Oolong Jelly",
				Ingredients: "乌龙茶底/桂花蜜/茶冻",
			},
			{
				ID:          3,
				Name:        models.L("杨梅青提冰萃", "Bayberry Grape Cold Brew"),
				Tag:         models.L("季节限定", "Seasonal"),
				Desc:        models.L("当季杨梅与青提果肉，冷萃茶打底", "Seasonal bayberry and green grape over cold-brewed tea"),
				Price:       "20",
				Eng:         "Bayberry Grape Cold Brew",
				Ingredients: "冷萃绿茶/杨梅/青提",
			},
		},
		Leads:   []models.Lead{},
		Library: []string{},
	}
}
