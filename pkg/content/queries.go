package content

import "fmt"

// Every query takes $siteId. An empty value matches every site.
const siteScope = `($siteId == "" || siteId->siteId.current == $siteId)`

const (
	authorFragment = `"author": author->{
    name,
    slug,
    image,
    bio
  }`

	categoryFragment = `"categories": categories[]->{
    title,
    slug,
    description
  }`

	mainImageFragment = `mainImage{
    asset,
    alt,
    caption
  }`

	cardProjection = `{
    _id,
    title,
    slug,
    excerpt,
    ` + mainImageFragment + `,
    prepTime,
    cookTime,
    servings,
    difficulty,
    publishedAt,
    _updatedAt,
    ` + authorFragment + `,
    ` + categoryFragment + `
  }`
)

var (
	allRecipesQuery = fmt.Sprintf(`*[_type == "recipe" && %s] | order(publishedAt desc) %s`, siteScope, cardProjection)

	featuredRecipesQuery = fmt.Sprintf(`*[_type == "recipe" && %s] | order(publishedAt desc)[0...%d] %s`, siteScope, FeaturedLimit, cardProjection)

	recipeBySlugQuery = fmt.Sprintf(`*[_type == "recipe" && slug.current == $slug && %s][0] {
    _id,
    title,
    slug,
    excerpt,
    description,
    %s,
    prepTime,
    cookTime,
    totalTime,
    servings,
    difficulty,
    cuisine,
    yield,
    dietary,
    equipment,
    allergyInfo,
    ingredients,
    instructions,
    tips,
    notes,
    nutrition,
    articleContent{
      introParagraph,
      whyLoveThis,
      secondParagraph,
      ingredientsList[]{ ingredientTitle, ingredientDetail },
      instructionsList[]{ stepTitle, stepDetail },
      firstImage{ asset, alt, caption },
      firstImageAlt,
      firstImageCaption,
      mustKnow,
      thirdParagraph,
      storageTips,
      substitutionTips,
      servingSuggestions,
      culturalContext,
      secondImage{ asset, alt, caption },
      secondImageAlt,
      secondImageCaption,
      proTips,
      fourthParagraph,
      faqs[]{ question, answer }
    },
    publishedAt,
    _updatedAt,
    %s,
    %s
  }`, siteScope, mainImageFragment, authorFragment, categoryFragment)

	allRecipeSlugsQuery = fmt.Sprintf(`*[_type == "recipe" && defined(slug.current) && %s]{
    "slug": slug.current
  }`, siteScope)

	allCategoriesQuery = fmt.Sprintf(`*[_type == "category" && %s] | order(title asc) {
    _id,
    title,
    slug,
    description,
    image,
    "recipeCount": count(*[_type == "recipe" && references(^._id) && %s])
  }`, siteScope, siteScope)

	recipesByCategoryQuery = fmt.Sprintf(`*[_type == "recipe" && %s && references(*[_type == "category" && slug.current == $categorySlug]._id)] | order(publishedAt desc) %s`, siteScope, cardProjection)

	allAuthorsQuery = fmt.Sprintf(`*[_type == "author" && %s] | order(name asc) {
    _id,
    name,
    slug,
    image,
    bio,
    "recipeCount": count(*[_type == "recipe" && references(^._id) && %s])
  }`, siteScope, siteScope)

	relatedRecipesQuery = fmt.Sprintf(`*[_type == "recipe" && slug.current != $currentSlug && %s] | order(_updatedAt desc)[0...%d] {
    _id,
    title,
    slug,
    excerpt,
    %s
  }`, siteScope, RelatedLimit, mainImageFragment)

	siteSettingsQuery = `*[_type == "siteSettings" && published == true && ($siteId == "" || siteId.current == $siteId)][0] {
    _id,
    siteId,
    domain,
    siteName,
    tagline,
    logo{ asset, alt, caption },
    favicon{ asset, alt },
    defaultTitle,
    defaultDescription,
    ogImage{ asset, alt, caption },
    theme{ primaryColor, fontFamily, borderRadius, layoutStyle },
    socialMedia{ facebook, instagram, pinterest, twitter, youtube, email },
    googleAnalyticsId,
    published
  }`
)
