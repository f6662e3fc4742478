package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/starcomputers/internal/content"
)

// ErrLastItem 表示删除被拒绝：集合不允许被删空。
var ErrLastItem = errors.New("cannot delete the last item")

// ErrItemNotFound 表示集合中不存在指定 id 或下标的元素。
var ErrItemNotFound = errors.New("item not found")

// AddHeroSlide 追加一帧轮播并分配新 id，随后整块上行。
// id 取现有最大值加一，删除后的 id 不会被复用。
func (m *Manager) AddHeroSlide(ctx context.Context, slide content.HeroSlide) (content.HeroSlide, error) {
	snapshot := m.Snapshot()

	slide.ID = nextID(len(snapshot.HeroSlides), func(i int) int { return snapshot.HeroSlides[i].ID })
	slides := append(append([]content.HeroSlide{}, snapshot.HeroSlides...), slide)

	if err := m.UpdateSection(ctx, content.SectionHeroSlides, slides); err != nil {
		return slide, err
	}
	return slide, nil
}

// DeleteHeroSlide 按 id 删除轮播帧，拒绝删除最后一帧。
func (m *Manager) DeleteHeroSlide(ctx context.Context, id int) error {
	snapshot := m.Snapshot()

	if len(snapshot.HeroSlides) <= 1 {
		return ErrLastItem
	}

	slides := make([]content.HeroSlide, 0, len(snapshot.HeroSlides))
	for _, slide := range snapshot.HeroSlides {
		if slide.ID != id {
			slides = append(slides, slide)
		}
	}
	if len(slides) == len(snapshot.HeroSlides) {
		return fmt.Errorf("%w: hero slide %d", ErrItemNotFound, id)
	}

	return m.UpdateSection(ctx, content.SectionHeroSlides, slides)
}

// AddStat 追加一项统计并分配新 id。
func (m *Manager) AddStat(ctx context.Context, stat content.Stat) (content.Stat, error) {
	snapshot := m.Snapshot()

	stat.ID = nextID(len(snapshot.Stats), func(i int) int { return snapshot.Stats[i].ID })
	stats := append(append([]content.Stat{}, snapshot.Stats...), stat)

	if err := m.UpdateSection(ctx, content.SectionStats, stats); err != nil {
		return stat, err
	}
	return stat, nil
}

// DeleteStat 按 id 删除统计项，拒绝删除最后一项。
func (m *Manager) DeleteStat(ctx context.Context, id int) error {
	snapshot := m.Snapshot()

	if len(snapshot.Stats) <= 1 {
		return ErrLastItem
	}

	stats := make([]content.Stat, 0, len(snapshot.Stats))
	for _, stat := range snapshot.Stats {
		if stat.ID != id {
			stats = append(stats, stat)
		}
	}
	if len(stats) == len(snapshot.Stats) {
		return fmt.Errorf("%w: stat %d", ErrItemNotFound, id)
	}

	return m.UpdateSection(ctx, content.SectionStats, stats)
}

// AddService 追加一项服务并分配新 id。
func (m *Manager) AddService(ctx context.Context, svc content.Service) (content.Service, error) {
	snapshot := m.Snapshot()

	svc.ID = nextID(len(snapshot.Services), func(i int) int { return snapshot.Services[i].ID })
	services := append(append([]content.Service{}, snapshot.Services...), svc)

	if err := m.UpdateSection(ctx, content.SectionServices, services); err != nil {
		return svc, err
	}
	return svc, nil
}

// DeleteService 按 id 删除服务项，拒绝删除最后一项。
func (m *Manager) DeleteService(ctx context.Context, id int) error {
	snapshot := m.Snapshot()

	if len(snapshot.Services) <= 1 {
		return ErrLastItem
	}

	services := make([]content.Service, 0, len(snapshot.Services))
	for _, svc := range snapshot.Services {
		if svc.ID != id {
			services = append(services, svc)
		}
	}
	if len(services) == len(snapshot.Services) {
		return fmt.Errorf("%w: service %d", ErrItemNotFound, id)
	}

	return m.UpdateSection(ctx, content.SectionServices, services)
}

// AddWhyChooseUsItem 追加一条"为什么选择我们"。该集合没有
// 稳定 id，只能按下标寻址。
func (m *Manager) AddWhyChooseUsItem(ctx context.Context, item content.WhyChooseUsItem) error {
	snapshot := m.Snapshot()

	about := snapshot.About
	about.WhyChooseUs = append(append([]content.WhyChooseUsItem{}, about.WhyChooseUs...), item)

	return m.UpdateSection(ctx, content.SectionAbout, about)
}

// DeleteWhyChooseUsItem 按下标删除一条"为什么选择我们"。
// 删除会让后续元素整体前移，调用方重复编辑前需要重新读取。
func (m *Manager) DeleteWhyChooseUsItem(ctx context.Context, index int) error {
	snapshot := m.Snapshot()

	items := snapshot.About.WhyChooseUs
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: whyChooseUs index %d", ErrItemNotFound, index)
	}
	if len(items) <= 1 {
		return ErrLastItem
	}

	about := snapshot.About
	about.WhyChooseUs = append(append([]content.WhyChooseUsItem{}, items[:index]...), items[index+1:]...)

	return m.UpdateSection(ctx, content.SectionAbout, about)
}

// nextID 返回现有最大 id 加一，空集合从 1 开始。
func nextID(n int, idAt func(int) int) int {
	max := 0
	for i := 0; i < n; i++ {
		if id := idAt(i); id > max {
			max = id
		}
	}
	return max + 1
}
